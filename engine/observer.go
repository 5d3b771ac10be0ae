package engine

// Observer receives ability notifications, all calls happen on the tick goroutine
type Observer interface {
	OnChargeChanged(charges, max int)
	OnDashConsumed(charges, max int)
	OnRewindStateChanged(active bool)
}

// NopObserver ignores every notification
type NopObserver struct{}

func (NopObserver) OnChargeChanged(int, int)  {}
func (NopObserver) OnDashConsumed(int, int)   {}
func (NopObserver) OnRewindStateChanged(bool) {}

// Observers fans a notification out in slice order
type Observers []Observer

func (o Observers) OnChargeChanged(charges, max int) {
	for _, obs := range o {
		obs.OnChargeChanged(charges, max)
	}
}

func (o Observers) OnDashConsumed(charges, max int) {
	for _, obs := range o {
		obs.OnDashConsumed(charges, max)
	}
}

func (o Observers) OnRewindStateChanged(active bool) {
	for _, obs := range o {
		obs.OnRewindStateChanged(active)
	}
}

// ObserverFuncs adapts plain functions, nil fields are skipped
type ObserverFuncs struct {
	ChargeChanged      func(charges, max int)
	DashConsumed       func(charges, max int)
	RewindStateChanged func(active bool)
}

func (f ObserverFuncs) OnChargeChanged(charges, max int) {
	if f.ChargeChanged != nil {
		f.ChargeChanged(charges, max)
	}
}

func (f ObserverFuncs) OnDashConsumed(charges, max int) {
	if f.DashConsumed != nil {
		f.DashConsumed(charges, max)
	}
}

func (f ObserverFuncs) OnRewindStateChanged(active bool) {
	if f.RewindStateChanged != nil {
		f.RewindStateChanged(active)
	}
}
