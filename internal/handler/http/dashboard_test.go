package http

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/workpulse/ems-backend/internal/projection"
)

func TestWriteStatsEvent(t *testing.T) {
	rec := httptest.NewRecorder()

	writeStatsEvent(rec, rec, projection.LiveStats{Work: 1.5, Break: 10, Task: 30, Idle: 50})

	body := rec.Body.String()
	assert.True(t, rec.Flushed)
	assert.Contains(t, body, "event: stats\n")
	assert.Contains(t, body, `"work":1.5`)
	assert.Contains(t, body, `"idle":50`)
	assert.True(t, len(body) >= 2 && body[len(body)-2:] == "\n\n",
		"frame must end with a blank line")
}
