package contact

import "sync"

// Variant is the visual severity of a notification.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a transient message shown to the visitor as a toast.
type Notification struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

// NotificationSink displays notifications. Nothing is read back.
type NotificationSink interface {
	Notify(Notification)
}

// Recorder is a NotificationSink that keeps every notification in order.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// Notifications returns a copy of the recorded notifications.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

func sentNotification() Notification {
	return Notification{
		Title:       "Mensagem enviada!",
		Description: "Entraremos em contato em breve.",
		Variant:     VariantDefault,
	}
}

func invalidNotification(err *ValidationError) Notification {
	return Notification{
		Title:       "Erro no formulário",
		Description: err.Message,
		Variant:     VariantDestructive,
	}
}

func deliveryFailedNotification() Notification {
	return Notification{
		Title:       "Erro no envio",
		Description: "Não foi possível enviar sua mensagem. Tente novamente em instantes.",
		Variant:     VariantDestructive,
	}
}

// RateLimitedNotification is shown when a client submits too often.
func RateLimitedNotification() Notification {
	return Notification{
		Title:       "Muitas tentativas",
		Description: "Aguarde um momento antes de enviar novamente.",
		Variant:     VariantDestructive,
	}
}
