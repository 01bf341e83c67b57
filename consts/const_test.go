package consts_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/stretchr/testify/require"
)

func TestIsInputError(t *testing.T) {
	require.True(t, consts.IsInputError(consts.ErrorsCardNotPlayable))
	require.True(t, consts.IsInputError(fmt.Errorf("play: %w", consts.ErrorsInputInvalid)))
	require.False(t, consts.IsInputError(consts.ErrorsPlayersInvalid))
	require.False(t, consts.IsInputError(errors.New("boom")))
	require.False(t, consts.IsInputError(nil))
}
