package service

import (
	"github.com/MKhiriev/go-video-notes/internal/adapter"
	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/store"
)

// ClientServices groups the client-side services sharing one notifier.
type ClientServices struct {
	Notifier *ChannelNotifier

	AuthService  ClientAuthService
	NoteService  ClientNoteService
	SyncJob      ClientSyncJob
	Editor       EditorSession
	StudyService ClientStudyService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig) *ClientServices {
	notifier := NewChannelNotifier(0)
	notes := NewClientNoteService(serverAdapter, notifier)

	return &ClientServices{
		Notifier:     notifier,
		AuthService:  NewClientAuthService(localStore.SessionRepository, serverAdapter),
		NoteService:  notes,
		SyncJob:      NewClientSyncJob(notes),
		Editor:       NewEditorSession(notes, notifier, cfg.Editor),
		StudyService: NewClientStudyService(serverAdapter, notifier),
	}
}
