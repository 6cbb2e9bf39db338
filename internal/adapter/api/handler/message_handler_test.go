package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendMessageRejectsMissingReceiver(t *testing.T) {
	h := NewMessageHandler(nil)

	c, rec := newTestContext(t, http.MethodPost, "/v1/messages", `{"content":"hello"}`)
	c.Set("uid", "alice")

	if assert.NoError(t, h.SendMessage(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	}
}

func TestSendMessageRejectsUnknownKind(t *testing.T) {
	h := NewMessageHandler(nil)

	c, rec := newTestContext(t, http.MethodPost, "/v1/messages", `{"receiver_id":"bob","content":"hello","kind":"video"}`)
	c.Set("uid", "alice")

	if assert.NoError(t, h.SendMessage(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	}
}
