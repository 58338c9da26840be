package cmd

type Config struct {
	HTTPPort       string
	UnitPrice      int
	ReportSchedule string
}
