package controllers

import (
	"context"
	"log"
	"sync"

	"civicdispatch-be/dispatch"
	"civicdispatch-be/notify"
	"civicdispatch-be/store"
)

// Shared collaborators for every controller, wired once from main. Each
// process is one "viewer" of the shared collection; viewerID keeps its own
// writes out of its change notifications.
var (
	issueStore store.Store
	policy     dispatch.Policy
	notifier   notify.Notifier
	viewerID   string
	alerts     = notify.NewAlertBuffer(0)

	// Creation events must be serialized so epoch-ms IDs stay unique.
	idMu   sync.Mutex
	lastID int64
)

// Setup wires the controllers to their collaborators and starts listening
// for changes written by other viewers of the same collection.
func Setup(s store.Store, p dispatch.Policy, n notify.Notifier, viewer string) error {
	issueStore = s
	policy = p
	notifier = n
	viewerID = viewer

	_, err := n.Subscribe(context.Background(), viewer, onCollectionChanged)
	return err
}

// onCollectionChanged runs for every write by another viewer: re-fetch the
// collection so derived views recompute, and surface a transient alert.
func onCollectionChanged(ev notify.Event) {
	issues := issueStore.LoadAll(context.Background())
	log.Printf("Issue collection changed (version %d by %s), reloaded %d issues", ev.Version, ev.Writer, len(issues))
	alerts.Post("Alert: A new issue has been reported and assigned to your department!", ev.Version)
}

// publishChange announces this viewer's completed write. Notification
// failures are logged, never surfaced: the write itself already succeeded.
func publishChange(ctx context.Context) {
	if notifier == nil {
		return
	}
	if _, err := notifier.Publish(ctx, viewerID); err != nil {
		log.Printf("Failed to publish change notification: %v", err)
	}
}
