package model

import (
	"strings"
)

type Division string

const (
	DIV_UNKNOWN Division = "UNK"
	DIV_MPO     Division = "MPO"
	DIV_FPO     Division = "FPO"
)

func ParseDivision(div string) Division {
	div = strings.ToLower(div)
	switch div {
	case "mpo", "open":
		return DIV_MPO
	case "fpo", "open women":
		return DIV_FPO
	default:
		return DIV_UNKNOWN
	}
}
