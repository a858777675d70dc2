package presenter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/regform/pkg/presenter"
)

func TestPasswordToggle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p := presenter.NewPasswordToggle()
	assertState := func(t *testing.T, masked bool) {
		t.Helper()
		assert.Equal(t, masked, p.Masked())
		assert.Equal(t, masked, p.Shown(presenter.ControlOpen))
		assert.Equal(t, !masked, p.Shown(presenter.ControlClosed))
		if masked {
			assert.Equal(t, "password", p.InputType())
		} else {
			assert.Equal(t, "text", p.InputType())
		}
	}

	assertState(t, true)

	assert.False(t, p.Click(ctx, presenter.ControlClosed), "closed control does nothing while masked")
	assertState(t, true)

	assert.True(t, p.Click(ctx, presenter.ControlOpen))
	assertState(t, false)

	assert.False(t, p.Click(ctx, presenter.ControlOpen), "open control does nothing while revealed")
	assertState(t, false)

	assert.True(t, p.Click(ctx, presenter.ControlClosed))
	assertState(t, true)

	assert.False(t, p.Click(ctx, presenter.Control("bogus")))
	assertState(t, true)
}
