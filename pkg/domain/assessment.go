package domain

import "time"

// Route is a legal route the decision engine can recommend.
type Route string

const (
	// RouteSection8 is possession under Housing Act 1988 section 8 (fault
	// grounds, Form 3 notice).
	RouteSection8 Route = "section_8"
	// RouteSection21 is no-fault possession under section 21 (Form 6A notice).
	RouteSection21 Route = "section_21"
	// RouteDual is serving Section 8 and Section 21 notices in parallel.
	RouteDual Route = "dual"
	// RouteMoneyClaim is recovering arrears through the county court without
	// seeking possession.
	RouteMoneyClaim Route = "money_claim"
	// RouteTenancyAgreement is not a possession route: the case only needs a
	// new tenancy agreement drafted.
	RouteTenancyAgreement Route = "tenancy_agreement"
	// RouteNone means no route is currently available; the blockers explain
	// what must be fixed first.
	RouteNone Route = "none"
)

// Blocker is a single reason a route is unavailable.
type Blocker struct {
	// Code is a stable machine-readable identifier, e.g. "deposit_unprotected".
	Code string `json:"code"`
	// Detail is a human-readable explanation shown in the wizard.
	Detail string `json:"detail"`
}

// GroundFinding is the engine's verdict on one Section 8 ground.
type GroundFinding struct {
	// Code is the statutory ground number, e.g. "8".
	Code string `json:"code"`
	// Mandatory says whether the court must order possession when the ground
	// is proven (Schedule 2 Part I) rather than may (Part II).
	Mandatory bool `json:"mandatory"`
	// Met says whether the collected facts support relying on this ground.
	Met bool `json:"met"`
	// Reason explains the verdict either way.
	Reason string `json:"reason"`
	// NoticeDays is the minimum notice period this ground requires.
	NoticeDays int `json:"noticeDays"`
}

// RouteEligibility summarizes whether one notice route is open.
type RouteEligibility struct {
	Eligible bool      `json:"eligible"`
	Blockers []Blocker `json:"blockers,omitempty"`
	// NoticeDays is the required notice period in days. For Section 8 it is
	// the longest period among the grounds relied on.
	NoticeDays int `json:"noticeDays,omitempty"`
	// NoticeMonths is used instead of NoticeDays where the statute counts in
	// calendar months (Section 21).
	NoticeMonths int `json:"noticeMonths,omitempty"`
}

// Assessment is the decision engine's output for a set of case facts. It is
// persisted on the case and refreshed whenever the facts change.
type Assessment struct {
	// Route is the recommended route.
	Route Route `json:"route"`
	// SecondaryRoutes lists additional routes worth pursuing alongside the
	// recommended one.
	SecondaryRoutes []Route `json:"secondaryRoutes,omitempty"`
	// Product is the catalog product that fulfills the recommendation.
	Product Product `json:"product,omitempty"`

	// Grounds holds the Section 8 findings, one per ground considered.
	Grounds   []GroundFinding  `json:"grounds,omitempty"`
	Section8  RouteEligibility `json:"section8"`
	Section21 RouteEligibility `json:"section21"`

	// ArrearsMonths is the arrears expressed in months of rent, rounded to
	// two decimals. Zero when rent or arrears are unknown.
	ArrearsMonths float64 `json:"arrearsMonths,omitempty"`

	// GeneratedAt is when the engine produced this assessment.
	GeneratedAt time.Time `json:"generatedAt"`
}

// MetGrounds returns the codes of the grounds the facts support.
func (a *Assessment) MetGrounds() []string {
	var out []string
	for _, g := range a.Grounds {
		if g.Met {
			out = append(out, g.Code)
		}
	}

	return out
}
