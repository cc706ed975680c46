// Package capture models the order form: two independent drafts behind a
// tab control and the Idle → Submitting → {Success, Error} submission
// state machine. The page's inline script mirrors this behavior; this
// package is the reference implementation and the programmatic client.
package capture

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"brekkie/internal/domain"
	"brekkie/internal/validation"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

type Tab string

const (
	TabDelivery  Tab = "delivery"
	TabWholesale Tab = "wholesale"
)

// SuccessDisplayDelay is how long the confirmation panel shows before the
// form resets to a cleared Idle state.
const SuccessDisplayDelay = 3 * time.Second

type DeliveryDraft struct {
	Name                string
	Email               string
	Phone               string
	ClassicQty          int
	BlueberryQty        int
	WalnutQty           int
	DeliveryDate        string
	Address             domain.Address
	SpecialInstructions string
}

type WholesaleDraft struct {
	BusinessName        string
	ContactName         string
	Email               string
	Phone               string
	BusinessType        string
	ClassicQty          int
	BlueberryQty        int
	WalnutQty           int
	Address             domain.Address
	Frequency           string
	SpecialInstructions string
}

// Form is safe for use from multiple goroutines. At most one submission
// is in flight at a time; Submit while not Idle is rejected locally.
type Form struct {
	mu           sync.Mutex
	gatewayURL   string
	client       *http.Client
	successDelay time.Duration

	activeTab   Tab
	delivery    DeliveryDraft
	wholesale   WholesaleDraft
	state       State
	inlineError string
}

func NewForm(gatewayURL string, client *http.Client) *Form {
	if client == nil {
		client = http.DefaultClient
	}
	return &Form{
		gatewayURL:   gatewayURL,
		client:       client,
		successDelay: SuccessDisplayDelay,
		activeTab:    TabWholesale,
		state:        StateIdle,
	}
}

// SwitchTab changes the active variant. Both drafts are kept, so
// switching back does not lose in-progress input.
func (f *Form) SwitchTab(tab Tab) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activeTab = tab
	f.inlineError = ""
}

func (f *Form) ActiveTab() Tab {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.activeTab
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// InlineError returns the message shown next to the submit control, set
// when a submission is rejected before any network call.
func (f *Form) InlineError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inlineError
}

func (f *Form) EditDelivery(edit func(*DeliveryDraft)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	edit(&f.delivery)
}

func (f *Form) EditWholesale(edit func(*WholesaleDraft)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	edit(&f.wholesale)
}

func (f *Form) Delivery() DeliveryDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.delivery
}

func (f *Form) Wholesale() WholesaleDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.wholesale
}

// Submit validates the active draft and posts it to the gateway. The
// empty-order and delivery-date checks happen before any network call; a
// rejected draft leaves the form Idle with an inline message. On success the
// confirmation shows for the display delay, then the submitted tab's
// draft is cleared and the form returns to Idle. On error the draft is
// preserved so the customer can retry.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()

	if f.state != StateIdle {
		state := f.state
		f.mu.Unlock()
		return fmt.Errorf("submission not allowed in state %q", state)
	}
	f.inlineError = ""

	tab := f.activeTab
	payload := f.buildPayloadLocked(tab)

	if err := validation.ValidateQuantities(payload.ClassicQty, payload.BlueberryQty, payload.WalnutQty); err != nil {
		f.inlineError = err.Error()
		f.mu.Unlock()
		return err
	}

	if tab == TabDelivery {
		if err := validation.ValidateDeliveryDate(payload.DeliveryDate, time.Now()); err != nil {
			f.inlineError = err.Error()
			f.mu.Unlock()
			return err
		}
	}

	f.state = StateSubmitting
	f.mu.Unlock()

	err := f.post(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.state = StateError
		return err
	}

	f.state = StateSuccess
	time.AfterFunc(f.successDelay, func() { f.reset(tab) })
	return nil
}

// Dismiss acknowledges an error panel, returning to Idle with all draft
// data intact.
func (f *Form) Dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateError {
		f.state = StateIdle
	}
}

func (f *Form) reset(tab Tab) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateSuccess {
		return
	}
	f.state = StateIdle
	if tab == TabDelivery {
		f.delivery = DeliveryDraft{}
	} else {
		f.wholesale = WholesaleDraft{}
	}
}

func (f *Form) buildPayloadLocked(tab Tab) domain.OrderPayload {
	if tab == TabDelivery {
		d := f.delivery
		return domain.OrderPayload{
			FormType:            domain.FormTypeDelivery,
			Name:                d.Name,
			Email:               d.Email,
			Phone:               d.Phone,
			ClassicQty:          d.ClassicQty,
			BlueberryQty:        d.BlueberryQty,
			WalnutQty:           d.WalnutQty,
			DeliveryDate:        d.DeliveryDate,
			DeliveryAddress:     d.Address.Format(),
			SpecialInstructions: d.SpecialInstructions,
		}
	}

	w := f.wholesale
	return domain.OrderPayload{
		FormType:            domain.FormTypeWholesale,
		BusinessName:        w.BusinessName,
		ContactName:         w.ContactName,
		Email:               w.Email,
		Phone:               w.Phone,
		BusinessType:        w.BusinessType,
		ClassicQty:          w.ClassicQty,
		BlueberryQty:        w.BlueberryQty,
		WalnutQty:           w.WalnutQty,
		DeliveryAddress:     w.Address.Format(),
		Frequency:           w.Frequency,
		SpecialInstructions: w.SpecialInstructions,
	}
}

func (f *Form) post(ctx context.Context, payload domain.OrderPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.gatewayURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("submission failed with status %d", resp.StatusCode)
	}

	return nil
}
