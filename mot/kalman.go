package mot

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// kalmanFilter is an 8-state constant-velocity filter over a bounding box's
// top-left position and size: (x, y, vx, vy, w, h, vw, vh). Measurements are
// the 4-vector (x, y, w, h) of a detection.
type kalmanFilter struct {
	state *mat.VecDense // 8x1
	cov   *mat.Dense    // 8x8
	sigma float64       // process-noise scale, sigma^2 in the Q formula
	noise float64       // measurement-noise variance, diagonal of R
}

const stateDim = 8
const measDim = 4

// newKalmanFilter initializes a filter at rest from a first detection.
// Velocities start at zero; the initial covariance is the identity.
func newKalmanFilter(rect Rectangle, sigma, measurementNoise float64) *kalmanFilter {
	state := mat.NewVecDense(stateDim, []float64{rect.X, rect.Y, 0, 0, rect.Width, rect.Height, 0, 0})
	cov := mat.NewDense(stateDim, stateDim, nil)
	for i := 0; i < stateDim; i++ {
		cov.Set(i, i, 1.0)
	}
	return &kalmanFilter{state: state, cov: cov, sigma: sigma, noise: measurementNoise}
}

// transition builds F(dt): identity plus a constant-velocity coupling
// between each position/size component and its own rate.
func transition(dt float64) *mat.Dense {
	f := mat.NewDense(stateDim, stateDim, nil)
	for i := 0; i < stateDim; i++ {
		f.Set(i, i, 1.0)
	}
	// x<-vx, y<-vy, w<-vw, h<-vh
	f.Set(0, 2, dt)
	f.Set(1, 3, dt)
	f.Set(4, 6, dt)
	f.Set(5, 7, dt)
	return f
}

// processNoise builds Q(dt, sigma^2): the same constant-acceleration noise
// block applied independently to the (x, vx), (y, vy), (w, vw) and (h, vh)
// pairs.
func processNoise(dt, sigma2 float64) *mat.Dense {
	q := mat.NewDense(stateDim, stateDim, nil)
	pp := dt * dt * dt * dt / 4.0 * sigma2
	pv := dt * dt * dt / 2.0 * sigma2
	vv := dt * dt * sigma2
	for _, pair := range [4][2]int{{0, 2}, {1, 3}, {4, 6}, {5, 7}} {
		p, v := pair[0], pair[1]
		q.Set(p, p, pp)
		q.Set(p, v, pv)
		q.Set(v, p, pv)
		q.Set(v, v, vv)
	}
	return q
}

// measurementMatrix builds H: selects (x, y, w, h) out of the 8-D state.
func measurementMatrix() *mat.Dense {
	h := mat.NewDense(measDim, stateDim, nil)
	h.Set(0, 0, 1)
	h.Set(1, 1, 1)
	h.Set(2, 4, 1)
	h.Set(3, 5, 1)
	return h
}

// predict advances the filter by dt seconds. Per the tracker's own timestamp
// guard, callers must substitute a small positive dt for a non-positive gap
// before calling predict.
func (kf *kalmanFilter) predict(dt float64) {
	f := transition(dt)
	q := processNoise(dt, kf.sigma)

	var newState mat.VecDense
	newState.MulVec(f, kf.state)
	kf.state = &newState

	var fp, fpft mat.Dense
	fp.Mul(f, kf.cov)
	fpft.Mul(&fp, f.T())
	fpft.Add(&fpft, q)
	kf.cov = &fpft
}

// correct folds a measurement (x, y, w, h) into the filter's state.
func (kf *kalmanFilter) correct(rect Rectangle) error {
	h := measurementMatrix()
	z := mat.NewVecDense(measDim, []float64{rect.X, rect.Y, rect.Width, rect.Height})

	var hx mat.VecDense
	hx.MulVec(h, kf.state)
	var innovation mat.VecDense
	innovation.SubVec(z, &hx)

	ph := mat.NewDense(stateDim, measDim, nil)
	ph.Mul(kf.cov, h.T())

	var hpht mat.Dense
	hpht.Mul(h, ph)
	for i := 0; i < measDim; i++ {
		hpht.Set(i, i, hpht.At(i, i)+kf.noise)
	}
	s := mat.NewSymDense(measDim, nil)
	for i := 0; i < measDim; i++ {
		for j := i; j < measDim; j++ {
			s.SetSym(i, j, hpht.At(i, j))
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(s); !ok {
		return errors.New("innovation covariance is not positive definite")
	}

	// gainT holds K^T (measDim x stateDim); solving against S avoids an
	// explicit inverse.
	var gainT mat.Dense
	if err := chol.SolveTo(&gainT, ph.T()); err != nil {
		return errors.Wrap(err, "could not solve for kalman gain")
	}

	var correction mat.VecDense
	correction.MulVec(gainT.T(), &innovation)
	var newState mat.VecDense
	newState.AddVec(kf.state, &correction)
	kf.state = &newState

	var temp mat.Dense
	temp.Mul(gainT.T(), &hpht)
	var temp2 mat.Dense
	temp2.Mul(&temp, &gainT)
	var newCov mat.Dense
	newCov.Sub(kf.cov, &temp2)
	kf.cov = &newCov
	return nil
}

// rect reads the filter's current (x, y, w, h) estimate.
func (kf *kalmanFilter) rect() Rectangle {
	return Rectangle{
		X:      kf.state.AtVec(0),
		Y:      kf.state.AtVec(1),
		Width:  kf.state.AtVec(4),
		Height: kf.state.AtVec(5),
	}
}
