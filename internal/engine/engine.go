// Package engine is the call surface consumed by the transport layer.
// It wires the load curve store, the catalogs and the analysis
// components together; each operation is synchronous and recomputes
// its result fresh from immutable inputs, so concurrent calls are safe
// without locks. The only mutable resource is the signal log, which
// serializes its own appends. Nothing here retries: every failure is a
// caller input error or a precondition failure.
package engine

import (
	"time"

	"energy-advisor/internal/analysis"
	"energy-advisor/internal/catalog"
	"energy-advisor/internal/config"
	"energy-advisor/internal/data"
	"energy-advisor/internal/model"
	"energy-advisor/internal/recommend"
	"energy-advisor/internal/sharing"

	"github.com/rs/zerolog"
)

// Deps are the collaborators an Engine needs. Curves and Signals are
// the only ones that touch anything outside process memory.
type Deps struct {
	Config    *config.Config
	Catalog   *catalog.Catalog
	Curves    data.LoadCurveStore
	Directory data.CustomerDirectory
	Contracts data.ContractStore
	Signals   sharing.SignalLog
	Log       zerolog.Logger
	// Now is the clock used for challenge eligibility. Defaults to
	// time.Now.
	Now func() time.Time
}

type Engine struct {
	cfg        *config.Config
	catalog    *catalog.Catalog
	curves     data.LoadCurveStore
	directory  data.CustomerDirectory
	contracts  data.ContractStore
	signals    sharing.SignalLog
	classifier *analysis.Classifier
	offers     *recommend.OfferMatcher
	challenges *recommend.ChallengeEngine
	partners   *sharing.PartnerMatcher
	now        func() time.Time
	log        zerolog.Logger
}

func New(deps Deps) *Engine {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	log := deps.Log.With().Str("component", "engine").Logger()
	return &Engine{
		cfg:        deps.Config,
		catalog:    deps.Catalog,
		curves:     deps.Curves,
		directory:  deps.Directory,
		contracts:  deps.Contracts,
		signals:    deps.Signals,
		classifier: analysis.NewClassifier(deps.Config.Classifier, deps.Log),
		offers:     recommend.NewOfferMatcher(deps.Catalog.Offers),
		challenges: recommend.NewChallengeEngine(deps.Catalog.Challenges),
		partners:   sharing.NewPartnerMatcher(deps.Catalog.Producers, deps.Config.Sharing.MaxPartners),
		now:        now,
		log:        log,
	}
}

// GetCustomer returns directory information for a customer.
func (e *Engine) GetCustomer(customerID string) (model.Customer, error) {
	return e.directory.Customer(customerID)
}

// GetContract returns the customer's current contract. ok is false
// when the customer exists but has no contract on file.
func (e *Engine) GetContract(customerID string) (model.Contract, bool, error) {
	return e.contracts.Contract(customerID)
}

// GetAggregate rolls the customer's load curve up into calendar
// buckets inside [start, end).
func (e *Engine) GetAggregate(customerID string, g model.Granularity, start, end time.Time) ([]model.Aggregate, error) {
	curve, err := e.curves.LoadCurve(customerID)
	if err != nil {
		return nil, err
	}
	return analysis.Aggregate(curve, g, model.Window{Start: start, End: end}, e.cfg.Aggregation)
}

// GetProfile classifies the customer's load curve.
func (e *Engine) GetProfile(customerID string) (model.ProfileResult, error) {
	curve, err := e.curves.LoadCurve(customerID)
	if err != nil {
		return model.ProfileResult{}, err
	}
	return e.classifier.Classify(curve)
}

// OfferAdvice is the full recommendation picture for one customer:
// the profile that drove the ranking, the current contract (when on
// file) and the ranked offers. Tips are included when the customer is
// already on the best-matching offer, so the conversation still has a
// next step.
type OfferAdvice struct {
	CustomerID     string
	Profile        model.ProfileResult
	Contract       *model.Contract
	CurrentOffer   *model.Offer
	Recommendation recommend.Recommendation
	Tips           []string
}

// GetOfferRecommendations classifies the customer and ranks the offer
// catalog against the resulting profile.
func (e *Engine) GetOfferRecommendations(customerID string) (OfferAdvice, error) {
	profile, err := e.GetProfile(customerID)
	if err != nil {
		return OfferAdvice{}, err
	}

	advice := OfferAdvice{CustomerID: customerID, Profile: profile}

	contract, ok, err := e.contracts.Contract(customerID)
	if err != nil {
		return OfferAdvice{}, err
	}
	currentOfferID := ""
	if ok {
		advice.Contract = &contract
		currentOfferID = contract.OfferID
		if offer, found := e.catalog.OfferByID(contract.OfferID); found {
			advice.CurrentOffer = &offer
		}
	}

	advice.Recommendation = e.offers.Match(profile.Label, currentOfferID)
	if advice.Recommendation.AlreadyOptimal {
		advice.Tips = recommend.GenericTips
	}

	e.log.Debug().
		Str("customer_id", customerID).
		Str("profile", string(profile.Label)).
		Bool("already_optimal", advice.Recommendation.AlreadyOptimal).
		Msg("built offer recommendations")
	return advice, nil
}

// GetChallenges returns the savings challenges currently open to the
// customer's profile, best reward first.
func (e *Engine) GetChallenges(customerID string) ([]model.Challenge, error) {
	profile, err := e.GetProfile(customerID)
	if err != nil {
		return nil, err
	}
	return e.challenges.ChallengesFor(profile.Label, e.now()), nil
}

// GetPartnerCandidates proposes energy-sharing producers in the
// customer's area, largest capacity first.
func (e *Engine) GetPartnerCandidates(customerID string) ([]model.PartnerCandidate, error) {
	customer, err := e.directory.Customer(customerID)
	if err != nil {
		return nil, err
	}
	return e.partners.FindPartners(customer.AreaCode), nil
}

// SignalInterest appends one expression of interest to the signal log
// and returns the stored record. Repeat calls for the same pair append
// repeat records.
func (e *Engine) SignalInterest(consumerID, producerID string) (model.SignalOfInterest, error) {
	if _, err := e.directory.Customer(consumerID); err != nil {
		return model.SignalOfInterest{}, err
	}
	rec, err := e.signals.Append(consumerID, producerID)
	if err != nil {
		return model.SignalOfInterest{}, err
	}
	e.log.Info().
		Str("consumer_id", consumerID).
		Str("producer_id", producerID).
		Str("reference", rec.Reference).
		Msg("recorded energy sharing interest")
	return rec, nil
}

// Offers exposes the full offer catalog.
func (e *Engine) Offers() []model.Offer {
	return e.catalog.Offers
}
