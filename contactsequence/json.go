package contactsequence

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// phaseConfig is the JSON layout of a single phase: a time axis plus row-major
// sample arrays.
type phaseConfig struct {
	Times           []float64   `json:"times"`
	State           [][]float64 `json:"state"`
	StateDerivative [][]float64 `json:"state_derivative"`
	Control         [][]float64 `json:"control"`
}

type sequenceConfig struct {
	Phases []phaseConfig `json:"phases"`
}

// ParseJSONFile reads a contact sequence from a JSON file.
func ParseJSONFile(filename string) (*ContactSequence, error) {
	jsonData, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read contact sequence file")
	}
	return ParseJSON(jsonData)
}

// ParseJSON parses a contact sequence from JSON data and validates it.
func ParseJSON(jsonData []byte) (*ContactSequence, error) {
	cfg := &sequenceConfig{}
	if err := json.Unmarshal(jsonData, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse contact sequence json")
	}
	cs := &ContactSequence{Phases: make([]Phase, 0, len(cfg.Phases))}
	for i, phase := range cfg.Phases {
		state, err := denseFromRows(phase.State)
		if err != nil {
			return nil, errors.Wrapf(err, "phase %d state", i)
		}
		deriv, err := denseFromRows(phase.StateDerivative)
		if err != nil {
			return nil, errors.Wrapf(err, "phase %d state_derivative", i)
		}
		var control *mat.Dense
		if len(phase.Control) > 0 {
			if control, err = denseFromRows(phase.Control); err != nil {
				return nil, errors.Wrapf(err, "phase %d control", i)
			}
		}
		cs.Phases = append(cs.Phases, Phase{
			Times:           phase.Times,
			State:           state,
			StateDerivative: deriv,
			Control:         control,
		})
	}
	if err := cs.Validate(); err != nil {
		return nil, err
	}
	return cs, nil
}

// denseFromRows packs row-major float slices into a Dense matrix, checking
// that all rows share one width.
func denseFromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, errors.New("no rows")
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, errors.New("empty rows")
	}
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Errorf("row %d has width %d, expected %d", i, len(row), cols)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}
