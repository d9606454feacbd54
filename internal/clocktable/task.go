// Package clocktable summarizes CLOCK entries reported by the external
// markdown-org-extract tool.
package clocktable

// Clock is one CLOCK interval as reported by the extractor.
type Clock struct {
	Start    string `json:"start"`
	End      string `json:"end,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// Task is a heading the extractor found, with its clocked time.
type Task struct {
	File           string  `json:"file"`
	Line           int     `json:"line"`
	Heading        string  `json:"heading"`
	Content        string  `json:"content,omitempty"`
	TaskType       string  `json:"task_type,omitempty"`
	Priority       string  `json:"priority,omitempty"`
	Clocks         []Clock `json:"clocks,omitempty"`
	TotalClockTime string  `json:"total_clock_time,omitempty"`
}
