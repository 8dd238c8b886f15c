package interfaces

// INotifier enqueues a best-effort push to a user. Fire-and-forget: no error
// is returned and delivery is never observed by the caller.

type INotifier interface {
	Notify(userID, title, body string, data map[string]string)
}
