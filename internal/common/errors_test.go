package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with cause",
			err:  NewUserError("import rejected", errors.New("record 2: missing name")),
			want: "import rejected: record 2: missing name",
		},
		{
			name: "without cause",
			err:  NewUserError("import rejected", nil),
			want: "import rejected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestUserError_PreservesCause(t *testing.T) {
	cause := fmt.Errorf("%w: insert failed", ErrOperationFailed)
	err := NewUserError("could not save transaction", cause)

	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "could not save transaction", userErr.UserMessage)

	// The wrapped chain stays inspectable through the user-facing layer.
	assert.ErrorIs(t, err, ErrOperationFailed)
}
