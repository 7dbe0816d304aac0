package controller

import (
	"testing"

	"github.com/jandkbailey21/FDG-Discord-Bot/model"
)

func TestGetDivisionFromQuery(t *testing.T) {
	tests := []struct {
		input string
		query string
		div   model.Division
	}{
		{input: "McBeth div:MPO", query: "McBeth", div: model.DIV_MPO},
		{input: "Tattar division:FPO", query: "Tattar", div: model.DIV_FPO},
		{input: "div: fpo", query: "", div: model.DIV_FPO},
		{input: "McBeth div:MA1", query: "McBeth", div: model.DIV_UNKNOWN},
		{input: "McBeth", query: "McBeth", div: model.DIV_UNKNOWN},
		{input: "", query: "", div: model.DIV_UNKNOWN},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			q, div := getDivisionFromQuery(tc.input)
			if q != tc.query {
				t.Errorf("expected query %q, got %q", tc.query, q)
			}
			if div != tc.div {
				t.Errorf("expected division %v, got %v", tc.div, div)
			}
		})
	}
}
