package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		current RequestStatus
		target  RequestStatus
		want    bool
	}{
		{StatusNew, StatusInProgress, true},
		{StatusNew, StatusCompleted, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusNew, StatusNew, true},
		{StatusInProgress, StatusInProgress, true},
		{StatusCompleted, StatusCompleted, true},
		{StatusInProgress, StatusNew, false},
		{StatusCompleted, StatusNew, false},
		{StatusCompleted, StatusInProgress, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.current, tc.target), "%s -> %s", tc.current, tc.target)
	}
}

func TestIsParty(t *testing.T) {
	r := &ServiceRequest{ClientID: "client-1", CompanyID: "company-1"}

	assert.True(t, r.IsParty("client-1"))
	assert.True(t, r.IsParty("company-1"))
	assert.False(t, r.IsParty("someone-else"))
}

func TestValidRequestStatus(t *testing.T) {
	assert.True(t, ValidRequestStatus(StatusNew))
	assert.True(t, ValidRequestStatus(StatusInProgress))
	assert.True(t, ValidRequestStatus(StatusCompleted))
	assert.False(t, ValidRequestStatus("cancelled"))
	assert.False(t, ValidRequestStatus(""))
}
