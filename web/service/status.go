package service

import (
	"time"

	"quote-ui/logger"
	"quote-ui/util/common"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Status carries the system and record figures shown on the summary page.
type Status struct {
	CpuPercent float64 `json:"cpuPercent"`
	MemUsed    string  `json:"memUsed"`
	MemTotal   string  `json:"memTotal"`
	Uptime     string  `json:"uptime"`

	Users   int64 `json:"users"`
	Authors int64 `json:"authors"`
	Quotes  int64 `json:"quotes"`
}

type StatusService struct {
	userService   UserService
	authorService AuthorService
	quoteService  QuoteService
}

// GetStatus gathers host metrics and table counts. Metric failures are
// logged and leave zero values, count failures are returned.
func (s *StatusService) GetStatus() (*Status, error) {
	status := &Status{}

	if percents, err := cpu.Percent(0, false); err != nil {
		logger.Warning("get cpu percent failed:", err)
	} else if len(percents) > 0 {
		status.CpuPercent = percents[0]
	}

	if memInfo, err := mem.VirtualMemory(); err != nil {
		logger.Warning("get virtual memory failed:", err)
	} else {
		status.MemUsed = common.FormatBytes(memInfo.Used)
		status.MemTotal = common.FormatBytes(memInfo.Total)
	}

	if upTime, err := host.Uptime(); err != nil {
		logger.Warning("get uptime failed:", err)
	} else {
		status.Uptime = (time.Duration(upTime) * time.Second).String()
	}

	var err error
	if status.Users, err = s.userService.Count(); err != nil {
		return nil, err
	}
	if status.Authors, err = s.authorService.Count(); err != nil {
		return nil, err
	}
	if status.Quotes, err = s.quoteService.Count(); err != nil {
		return nil, err
	}
	return status, nil
}
