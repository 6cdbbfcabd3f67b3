/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"sync"

	"github.com/fentec-project/prand/generator"
	"github.com/rs/zerolog"
)

// Hook holds the validity predicate and the sampling function currently
// used by one distribution kind. Every distribution built on the owning
// Registry reads the hook at call time, so replacing a function affects
// existing instances immediately.
type Hook[P any, T any] struct {
	name string
	reg  *Registry

	mu     sync.RWMutex
	valid  func(P) bool
	sample func(generator.Generator, P) T

	defaultValid  func(P) bool
	defaultSample func(generator.Generator, P) T
}

func newHook[P any, T any](reg *Registry, name string, valid func(P) bool, sample func(generator.Generator, P) T) *Hook[P, T] {
	return &Hook[P, T]{
		name:          name,
		reg:           reg,
		valid:         valid,
		sample:        sample,
		defaultValid:  valid,
		defaultSample: sample,
	}
}

// Valid reports whether p satisfies the current validity predicate.
func (h *Hook[P, T]) Valid(p P) bool {
	h.mu.RLock()
	valid := h.valid
	h.mu.RUnlock()
	return valid(p)
}

// Sample draws one value from g with the current sampling function.
func (h *Hook[P, T]) Sample(g generator.Generator, p P) T {
	h.mu.RLock()
	sample := h.sample
	h.mu.RUnlock()
	return sample(g, p)
}

// SetValidator replaces the validity predicate. A nil fn restores the
// built-in predicate. Parameters already held by distributions are not
// revalidated.
func (h *Hook[P, T]) SetValidator(fn func(P) bool) {
	if fn == nil {
		fn = h.defaultValid
	}
	h.mu.Lock()
	h.valid = fn
	h.mu.Unlock()
	h.reg.logger().Debug().Str("hook", h.name).Msg("validator replaced")
}

// SetSampler replaces the sampling function. A nil fn restores the
// built-in sampler.
func (h *Hook[P, T]) SetSampler(fn func(generator.Generator, P) T) {
	if fn == nil {
		fn = h.defaultSample
	}
	h.mu.Lock()
	h.sample = fn
	h.mu.Unlock()
	h.reg.logger().Debug().Str("hook", h.name).Msg("sampler replaced")
}

// Restore reinstates the built-in predicate and sampler.
func (h *Hook[P, T]) Restore() {
	h.mu.Lock()
	h.valid = h.defaultValid
	h.sample = h.defaultSample
	h.mu.Unlock()
	h.reg.logger().Debug().Str("hook", h.name).Msg("hooks restored")
}

// Registry holds one Hook per distribution kind.
type Registry struct {
	logMu sync.RWMutex
	log   zerolog.Logger

	beta              *Hook[BetaParams, float64]
	betaPrime         *Hook[BetaPrimeParams, float64]
	cauchy            *Hook[CauchyParams, float64]
	chi               *Hook[ChiParams, float64]
	chiSquare         *Hook[ChiSquareParams, float64]
	continuousUniform *Hook[ContinuousUniformParams, float64]
	erlang            *Hook[ErlangParams, float64]
	exponential       *Hook[ExponentialParams, float64]
	fisherSnedecor    *Hook[FisherSnedecorParams, float64]
	fisherTippett     *Hook[FisherTippettParams, float64]
	gamma             *Hook[GammaParams, float64]
	laplace           *Hook[LaplaceParams, float64]
	logistic          *Hook[LogisticParams, float64]
	lognormal         *Hook[LognormalParams, float64]
	normal            *Hook[NormalParams, float64]
	pareto            *Hook[ParetoParams, float64]
	power             *Hook[PowerParams, float64]
	rayleigh          *Hook[RayleighParams, float64]
	studentsT         *Hook[StudentsTParams, float64]
	triangular        *Hook[TriangularParams, float64]
	weibull           *Hook[WeibullParams, float64]
	bernoulli         *Hook[BernoulliParams, int]
	binomial          *Hook[BinomialParams, int]
	categorical       *Hook[CategoricalParams, int]
	discreteUniform   *Hook[DiscreteUniformParams, int]
	geometric         *Hook[GeometricParams, int]
	poisson           *Hook[PoissonParams, int]
}

// DefaultRegistry is used by distributions constructed without
// WithRegistry. It is process-wide: replacing one of its hooks changes the
// behaviour of every such distribution in the program.
var DefaultRegistry = NewRegistry()

// NewRegistry returns a registry with the built-in hooks of every kind and
// a logger that discards its output. Built-in samplers that are composed of
// other distributions draw through the hooks of the same registry, so
// replacing the Normal sampler also changes Gamma, Chi or Rayleigh.
func NewRegistry() *Registry {
	r := &Registry{log: zerolog.Nop()}
	r.beta = newHook(r, "beta", validBeta, r.sampleBeta)
	r.betaPrime = newHook(r, "beta-prime", validBetaPrime, r.sampleBetaPrime)
	r.cauchy = newHook(r, "cauchy", validCauchy, sampleCauchy)
	r.chi = newHook(r, "chi", validChi, r.sampleChi)
	r.chiSquare = newHook(r, "chi-square", validChiSquare, r.sampleChiSquare)
	r.continuousUniform = newHook(r, "continuous-uniform", validContinuousUniform, sampleContinuousUniform)
	r.erlang = newHook(r, "erlang", validErlang, sampleErlang)
	r.exponential = newHook(r, "exponential", validExponential, sampleExponential)
	r.fisherSnedecor = newHook(r, "fisher-snedecor", validFisherSnedecor, r.sampleFisherSnedecor)
	r.fisherTippett = newHook(r, "fisher-tippett", validFisherTippett, sampleFisherTippett)
	r.gamma = newHook(r, "gamma", validGamma, r.sampleGamma)
	r.laplace = newHook(r, "laplace", validLaplace, sampleLaplace)
	r.logistic = newHook(r, "logistic", validLogistic, sampleLogistic)
	r.lognormal = newHook(r, "lognormal", validLognormal, r.sampleLognormal)
	r.normal = newHook(r, "normal", validNormal, sampleNormal)
	r.pareto = newHook(r, "pareto", validPareto, samplePareto)
	r.power = newHook(r, "power", validPower, samplePower)
	r.rayleigh = newHook(r, "rayleigh", validRayleigh, r.sampleRayleigh)
	r.studentsT = newHook(r, "students-t", validStudentsT, r.sampleStudentsT)
	r.triangular = newHook(r, "triangular", validTriangular, sampleTriangular)
	r.weibull = newHook(r, "weibull", validWeibull, sampleWeibull)
	r.bernoulli = newHook(r, "bernoulli", validBernoulli, sampleBernoulli)
	r.binomial = newHook(r, "binomial", validBinomial, sampleBinomial)
	r.categorical = newHook(r, "categorical", validCategorical, sampleCategorical)
	r.discreteUniform = newHook(r, "discrete-uniform", validDiscreteUniform, sampleDiscreteUniform)
	r.geometric = newHook(r, "geometric", validGeometric, sampleGeometric)
	r.poisson = newHook(r, "poisson", validPoisson, samplePoisson)
	return r
}

// SetLogger sets the logger receiving hook replacement and reset events.
func (r *Registry) SetLogger(l zerolog.Logger) {
	r.logMu.Lock()
	r.log = l
	r.logMu.Unlock()
}

func (r *Registry) logger() *zerolog.Logger {
	r.logMu.RLock()
	l := r.log
	r.logMu.RUnlock()
	return &l
}

// Beta returns the hooks of the beta distribution.
func (r *Registry) Beta() *Hook[BetaParams, float64] {
	return r.beta
}

// BetaPrime returns the hooks of the beta prime distribution.
func (r *Registry) BetaPrime() *Hook[BetaPrimeParams, float64] {
	return r.betaPrime
}

// Cauchy returns the hooks of the cauchy distribution.
func (r *Registry) Cauchy() *Hook[CauchyParams, float64] {
	return r.cauchy
}

// Chi returns the hooks of the chi distribution.
func (r *Registry) Chi() *Hook[ChiParams, float64] {
	return r.chi
}

// ChiSquare returns the hooks of the chi square distribution.
func (r *Registry) ChiSquare() *Hook[ChiSquareParams, float64] {
	return r.chiSquare
}

// ContinuousUniform returns the hooks of the continuous uniform distribution.
func (r *Registry) ContinuousUniform() *Hook[ContinuousUniformParams, float64] {
	return r.continuousUniform
}

// Erlang returns the hooks of the erlang distribution.
func (r *Registry) Erlang() *Hook[ErlangParams, float64] {
	return r.erlang
}

// Exponential returns the hooks of the exponential distribution.
func (r *Registry) Exponential() *Hook[ExponentialParams, float64] {
	return r.exponential
}

// FisherSnedecor returns the hooks of the fisher snedecor distribution.
func (r *Registry) FisherSnedecor() *Hook[FisherSnedecorParams, float64] {
	return r.fisherSnedecor
}

// FisherTippett returns the hooks of the fisher tippett distribution.
func (r *Registry) FisherTippett() *Hook[FisherTippettParams, float64] {
	return r.fisherTippett
}

// Gamma returns the hooks of the gamma distribution.
func (r *Registry) Gamma() *Hook[GammaParams, float64] {
	return r.gamma
}

// Laplace returns the hooks of the laplace distribution.
func (r *Registry) Laplace() *Hook[LaplaceParams, float64] {
	return r.laplace
}

// Logistic returns the hooks of the logistic distribution.
func (r *Registry) Logistic() *Hook[LogisticParams, float64] {
	return r.logistic
}

// Lognormal returns the hooks of the lognormal distribution.
func (r *Registry) Lognormal() *Hook[LognormalParams, float64] {
	return r.lognormal
}

// Normal returns the hooks of the normal distribution.
func (r *Registry) Normal() *Hook[NormalParams, float64] {
	return r.normal
}

// Pareto returns the hooks of the pareto distribution.
func (r *Registry) Pareto() *Hook[ParetoParams, float64] {
	return r.pareto
}

// Power returns the hooks of the power distribution.
func (r *Registry) Power() *Hook[PowerParams, float64] {
	return r.power
}

// Rayleigh returns the hooks of the rayleigh distribution.
func (r *Registry) Rayleigh() *Hook[RayleighParams, float64] {
	return r.rayleigh
}

// StudentsT returns the hooks of the students t distribution.
func (r *Registry) StudentsT() *Hook[StudentsTParams, float64] {
	return r.studentsT
}

// Triangular returns the hooks of the triangular distribution.
func (r *Registry) Triangular() *Hook[TriangularParams, float64] {
	return r.triangular
}

// Weibull returns the hooks of the weibull distribution.
func (r *Registry) Weibull() *Hook[WeibullParams, float64] {
	return r.weibull
}

// Bernoulli returns the hooks of the bernoulli distribution.
func (r *Registry) Bernoulli() *Hook[BernoulliParams, int] {
	return r.bernoulli
}

// Binomial returns the hooks of the binomial distribution.
func (r *Registry) Binomial() *Hook[BinomialParams, int] {
	return r.binomial
}

// Categorical returns the hooks of the categorical distribution.
func (r *Registry) Categorical() *Hook[CategoricalParams, int] {
	return r.categorical
}

// DiscreteUniform returns the hooks of the discrete uniform distribution.
func (r *Registry) DiscreteUniform() *Hook[DiscreteUniformParams, int] {
	return r.discreteUniform
}

// Geometric returns the hooks of the geometric distribution.
func (r *Registry) Geometric() *Hook[GeometricParams, int] {
	return r.geometric
}

// Poisson returns the hooks of the poisson distribution.
func (r *Registry) Poisson() *Hook[PoissonParams, int] {
	return r.poisson
}
