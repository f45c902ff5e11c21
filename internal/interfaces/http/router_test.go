package http

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidators_TicketStatus(t *testing.T) {
	registerValidators()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	for _, status := range []string{"new", "in_progress", "resolved"} {
		assert.NoError(t, v.Var(status, "ticketstatus"), status)
	}
	assert.Error(t, v.Var("reopened", "ticketstatus"))
	assert.Error(t, v.Var("", "ticketstatus"))
}
