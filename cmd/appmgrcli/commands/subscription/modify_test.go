package subscription

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifySuccess(t *testing.T) {
	host, port, requests := newAppManager(t, http.StatusOK, `{"id":3,"eventType":"deleted"}`)

	var err error
	out := captureStdout(t, func() {
		err = runCommand(t, host, port, "modify", "3", "http://example.com/cb", "deleted", "5", "30")
	})
	require.NoError(t, err)
	assert.Contains(t, out, `"eventType": "deleted"`)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/ric/v1/subscriptions/3", req.Path)

	var sent map[string]map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Equal(t, "deleted", sent["Data"]["eventType"])
}

func TestModifyAlias(t *testing.T) {
	host, port, requests := newAppManager(t, http.StatusOK, "{}")

	var err error
	captureStdout(t, func() {
		err = runCommand(t, host, port, "mod", "3", "http://example.com/cb", "all", "1", "1")
	})
	require.NoError(t, err)
	require.Len(t, *requests, 1)
}

func TestModifyValidationFailuresMakeNoCall(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing id", args: []string{"modify", "http://example.com/cb", "all", "3", "10"}},
		{name: "bad url", args: []string{"modify", "3", "example.com/cb", "all", "3", "10"}},
		{name: "bad event type", args: []string{"modify", "3", "http://example.com/cb", "sometimes", "3", "10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, port, requests := newAppManager(t, http.StatusOK, "")

			err := runCommand(t, host, port, tt.args...)
			assert.Error(t, err)
			assert.Empty(t, *requests)
		})
	}
}

func TestDeleteSuccess(t *testing.T) {
	host, port, requests := newAppManager(t, http.StatusNoContent, "")

	var err error
	out := captureStdout(t, func() {
		err = runCommand(t, host, port, "delete", "3")
	})
	require.NoError(t, err)
	assert.Contains(t, out, "SUCCESSFUL DELETION")

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/ric/v1/subscriptions/3", req.Path)
}

func TestDeleteErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		errMsg string
	}{
		{name: "bad request", status: http.StatusBadRequest, errMsg: "invalid subscription id"},
		{name: "internal error", status: http.StatusInternalServerError, errMsg: "internal error"},
		{name: "unknown status", status: http.StatusOK, errMsg: "unexpected status 200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, port, _ := newAppManager(t, tt.status, "")

			err := runCommand(t, host, port, "delete", "3")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDeleteMissingIDMakesNoCall(t *testing.T) {
	host, port, requests := newAppManager(t, http.StatusNoContent, "")

	err := runCommand(t, host, port, "delete")
	assert.Error(t, err)
	assert.Empty(t, *requests)
}
