package cmd

import "strings"

// defaultRoster is the office's employee list, offered to clients for name
// selection. It can be overridden with the EMPLOYEES environment variable.
var defaultRoster = []string{
	"همام اليغشي",
	"زياد المدور",
	"جودي الايوبي",
	"براء الناصيف",
	"عقبة جاموس",
	"حسام الاحمد",
	"بيان السد اللحام",
	"رزان الخن",
	"امينة اللحام",
	"سدرة اليغشي",
	"مها رباح",
	"عدنان الحوري",
}

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	BackupSchedule string
	Roster         []string
}

// ParseRoster splits a comma-separated employee list, falling back to the
// default roster when the value is empty.
func ParseRoster(value string) []string {
	if value == "" {
		return defaultRoster
	}

	parts := strings.Split(value, ",")
	roster := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			roster = append(roster, name)
		}
	}

	if len(roster) == 0 {
		return defaultRoster
	}
	return roster
}
