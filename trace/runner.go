package trace

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lixenwraith/tracer/character"
	"github.com/lixenwraith/tracer/physics"
	"github.com/lixenwraith/tracer/vmath"
)

// Run plays every frame of script through c and the body, writing one JSON line per tick
func Run(c *character.Character, script Script, body *physics.Body, params physics.Params, w io.Writer) error {
	bw := bufio.NewWriter(w)

	for i, frame := range script.Frames() {
		if body != nil && vmath.IsZero3(frame.Input.Forward) {
			frame.Input.Forward = body.Forward()
		}

		out := c.Step(script.DT, frame)
		if body != nil {
			body.Apply(out, params, script.DT)
		}

		line, err := Encode(c.Snapshot(), out, body)
		if err != nil {
			return fmt.Errorf("encode tick %d: %w", i, err)
		}
		if _, err := bw.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("write tick %d: %w", i, err)
		}
	}
	return bw.Flush()
}
