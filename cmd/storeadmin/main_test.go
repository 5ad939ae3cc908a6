package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"migrate", "retry-item", "resume", "expire-pushes", "balance", "refill", "transactions", "grant-admin"} {
		assert.Contains(t, names, want)
	}
}

// Every case fails while validating input, before any connection is attempted.
func TestRootCmd_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "retry with invalid order number", args: []string{"retry-item", "12345", "1"}, wantErr: "invalid order number"},
		{name: "retry with invalid item id", args: []string{"retry-item", "2404815702", "x"}, wantErr: "invalid item id"},
		{name: "retry without item", args: []string{"retry-item", "2404815702"}, wantErr: "accepts 2 arg(s)"},
		{name: "balance with unknown mode", args: []string{"balance", "--mode", "sandbox"}, wantErr: "unknown registrar mode"},
		{name: "refill without amount", args: []string{"refill"}, wantErr: "required flag(s) \"amount\" not set"},
		{name: "refill with negative amount", args: []string{"refill", "--amount", "-5"}, wantErr: "invalid amount"},
		{name: "refill with garbage amount", args: []string{"refill", "--amount", "lots"}, wantErr: "invalid amount"},
		{name: "grant-admin without email", args: []string{"grant-admin"}, wantErr: "accepts 1 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRootCmd()
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetErr(&out)
			root.SetArgs(tt.args)

			err := root.Execute()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
