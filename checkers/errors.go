package checkers

import (
	"fmt"

	"github.com/chainhackers/gamejutsu/codec"
)

func malformed(why string) error {
	return fmt.Errorf("%w: %s", codec.ErrMalformedPayload, why)
}
