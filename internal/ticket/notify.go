package ticket

// PaymentNotifier receives the captured price when a ticket is paid. What it
// does with it (analytics, real billing) is opaque to the machine.
type PaymentNotifier interface {
	PaymentMade(amount string)
}

// PaymentFunc adapts a plain function to PaymentNotifier.
type PaymentFunc func(amount string)

// PaymentMade calls f.
func (f PaymentFunc) PaymentMade(amount string) {
	if f != nil {
		f(amount)
	}
}

type noopNotifier struct{}

func (noopNotifier) PaymentMade(string) {}
