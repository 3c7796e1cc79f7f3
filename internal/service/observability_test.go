package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	obs := NewLogUseCaseObserver(nil)
	assert.IsType(t, NoopUseCaseObserver{}, obs)
}

func TestLogUseCaseObserver_FieldsAreSorted(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "task.create",
		Duration: 5 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"size": "M", "owner": "Avery"},
	})

	line := buf.String()
	assert.Contains(t, line, "use_case=task.create")
	assert.Contains(t, line, "success=true")
	assert.Less(t, strings.Index(line, "owner="), strings.Index(line, "size="))
}

func TestLogUseCaseObserver_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "snapshot.import",
		Err:  errors.New("validation failed"),
	})

	line := buf.String()
	assert.Contains(t, line, "level=ERROR")
	assert.Contains(t, line, "error=")
}
