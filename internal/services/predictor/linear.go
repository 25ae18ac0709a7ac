// Package predictor ships a deterministic linear autoregressive model that
// satisfies the SequencePredictor contract. Anything with fit/predict can
// replace it; the pipeline assumes nothing beyond that contract.
package predictor

import (
	"errors"
	"fmt"

	domsvc "OilPulse/internal/domain/service"
)

// Linear regresses the one-step-ahead target on the flattened window block,
// trained with full-batch gradient descent from a zero initialization, so
// identical inputs always produce identical weights.
type Linear struct {
	epochs int
	lr     float64

	weights []float64
	bias    float64
	fitted  bool
}

func NewLinear(epochs int, lr float64) *Linear {
	if epochs <= 0 {
		epochs = 400
	}
	if lr <= 0 {
		lr = 0.05
	}
	return &Linear{epochs: epochs, lr: lr}
}

func (m *Linear) Fit(x [][][]float64, y []float64) error {
	if len(x) == 0 {
		return errors.New("no training windows")
	}
	if len(x) != len(y) {
		return fmt.Errorf("inputs disagree: %d windows, %d targets", len(x), len(y))
	}

	flat := make([][]float64, len(x))
	for i, w := range x {
		flat[i] = flatten(w)
		if len(flat[i]) != len(flat[0]) {
			return fmt.Errorf("window %d has %d features, want %d", i, len(flat[i]), len(flat[0]))
		}
	}

	dims := len(flat[0])
	m.weights = make([]float64, dims)
	m.bias = 0

	n := float64(len(flat))
	grad := make([]float64, dims)
	for epoch := 0; epoch < m.epochs; epoch++ {
		for j := range grad {
			grad[j] = 0
		}
		var gradBias float64
		for i, f := range flat {
			diff := m.forward(f) - y[i]
			for j, v := range f {
				grad[j] += diff * v
			}
			gradBias += diff
		}
		for j := range m.weights {
			m.weights[j] -= m.lr * grad[j] / n
		}
		m.bias -= m.lr * gradBias / n
	}

	m.fitted = true
	return nil
}

func (m *Linear) Predict(x [][][]float64) ([]float64, error) {
	if !m.fitted {
		return nil, errors.New("model not fitted")
	}

	out := make([]float64, len(x))
	for i, w := range x {
		f := flatten(w)
		if len(f) != len(m.weights) {
			return nil, fmt.Errorf("window %d has %d features, model was fit on %d", i, len(f), len(m.weights))
		}
		out[i] = m.forward(f)
	}
	return out, nil
}

func (m *Linear) forward(features []float64) float64 {
	sum := m.bias
	for j, v := range features {
		sum += m.weights[j] * v
	}
	return sum
}

func flatten(window [][]float64) []float64 {
	if len(window) == 0 {
		return nil
	}
	out := make([]float64, 0, len(window)*len(window[0]))
	for _, row := range window {
		out = append(out, row...)
	}
	return out
}

var _ domsvc.SequencePredictor = (*Linear)(nil)
