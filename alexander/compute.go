// SPDX-License-Identifier: MIT

package alexander

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/alexdata/braid"
	"github.com/katalvlaran/alexdata/matrix"
	"github.com/katalvlaran/alexdata/poly"
)

// Result carries every stage of Compute.
type Result struct {
	Kernel     *braid.Kernel
	Trace      *braid.Trace
	Closure    *braid.Closure
	Reduced    *matrix.Dense
	Polynomial *poly.Poly
	Data       *Invariant
}

// Compute runs the whole pipeline on k: track, resolve the capped closure,
// build the reduced Burau matrix, take the Alexander polynomial and derive
// the Alexander data. The first failing stage aborts with its error wrapped.
func Compute(k *braid.Kernel, opts ...Option) (*Result, error) {
	o := newOptions(opts...)
	log := o.logger.With(
		zap.Int("strands", k.Strands()),
		zap.Int("caps", k.Caps()),
		zap.Int("generators", k.Len()),
	)

	tr, cl, err := braid.Analyze(k)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	log.Debug("closure resolved",
		zap.Int("classes", len(cl.Classes)),
		zap.Ints("labels", cl.Labels),
	)

	reduced, err := ReducedBurau(k.Braid(), cl.Labels)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	log.Debug("burau reduced", zap.Int("order", reduced.Rows()))

	p, err := Polynomial(k, reduced)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	log.Debug("polynomial computed", zap.Int("terms", p.Len()))

	d, err := Data(k, cl, p)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	log.Debug("data computed", zap.Stringer("u", d.U), zap.Stringer("v", d.V))

	return &Result{
		Kernel:     k,
		Trace:      tr,
		Closure:    cl,
		Reduced:    reduced,
		Polynomial: p,
		Data:       d,
	}, nil
}
