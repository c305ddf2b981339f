package webform

import "buwana-tours/pkg/clientstore"

const (
	// LandingPage is where the plan-your-trip affordance redirects
	LandingPage = "index.html"
	// InquirySection is the landing page section scrolled to on arrival
	InquirySection = "inquiry"
)

// PlanTrip arms the one-shot scroll flag and returns the landing page as
// the redirect target
func PlanTrip(state *clientstore.State) (string, error) {
	if err := state.SetScrollToInquiry(); err != nil {
		return "", err
	}
	return LandingPage, nil
}

// OnLandingLoad consumes the scroll flag on landing page load. It returns
// the section to scroll to and true exactly once per armed flag; a plain
// visit returns false.
func OnLandingLoad(state *clientstore.State) (string, bool) {
	if state.TakeScrollToInquiry() {
		return InquirySection, true
	}
	return "", false
}
