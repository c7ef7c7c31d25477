package anneal

import "errors"

// ErrCalibrationDegenerate is returned by CompressedAnnealing when Phase 1
// (parameter calibration) cannot derive a starting temperature: either every
// probe pair produced an identical evaluation (Δv == 0, e.g. a constant
// neighbor function) or the target acceptance ratio chi0 is outside (0,1).
// Reported before any annealing iteration runs (§7 propagation policy).
var ErrCalibrationDegenerate = errors.New("anneal: calibration degenerate (Δv == 0 or chi0 not in (0,1))")
