package models

type PlayerDto struct {
	Username   string   `json:"username"`
	Balance    int      `json:"balance"`
	Pos        int      `json:"pos"`
	Properties []string `json:"properties"`
	Mortgaged  []string `json:"mortgaged,omitempty"`
	Active     bool     `json:"active"`
}
