package pipeline

// Stats counts what happened to the commits of a run.
type Stats struct {
	TotalCommits       int
	Selected           int
	SkippedByStep      int
	SkippedByRange     int
	SkippedDuplicate   int
	Scanned            int
	ScanFailures       int
	TimestampFallbacks int
	// Capped is set when commits were left unprocessed because the
	// record limit was reached.
	Capped bool
}
