package cmdutil

import (
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

var levelMap = map[string]log.Level{
	"error": log.ErrorLevel,
	"warn":  log.WarnLevel,
	"info":  log.InfoLevel,
	"debug": log.DebugLevel,
	"trace": log.TraceLevel,
}

// ParseLevel parses a logrus level from its name.
func ParseLevel(s string) (log.Level, error) {
	if level, ok := levelMap[s]; ok {
		return level, nil
	}

	var allLevels []string
	for level := range levelMap {
		allLevels = append(allLevels, level)
	}
	sort.Strings(allLevels)

	return log.FatalLevel,
		fmt.Errorf("%v is not a valid level. Valid levels are %v", s, strings.Join(allLevels, ", "))
}
