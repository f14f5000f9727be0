package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-video-notes/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"user_id", "login", "name", "password_hash", "created_at"}

	noteColumns = []string{
		"id", "user_id", "video_id", "video_title", "video_url", "content",
		"tags", "timestamps", "folder_id", "is_public", "views",
		"created_at", "updated_at",
	}

	folderColumns = []string{"id", "user_id", "name", "color", "created_at", "updated_at"}

	studySessionColumns = []string{
		"id", "user_id", "note_id", "kind", "cards_studied",
		"correct_answers", "duration_seconds", "created_at",
	}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── users ────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("login", "password_hash", "name").
		Values(user.Login, user.PasswordHash, user.Name).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserByLoginQuery(login string) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(sq.Eq{"login": login}).
		ToSql()
}

// ── notes ────────────────────────────────────────────────────────────────────

func buildListNotesQuery(filter models.NoteFilter) (string, []any, error) {
	q := psql.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": filter.UserID})

	if filter.FolderID != "" {
		q = q.Where(sq.Eq{"folder_id": filter.FolderID})
	}

	if query := strings.TrimSpace(filter.Query); query != "" {
		pattern := "%" + escapeLike(query) + "%"
		q = q.Where(sq.Or{
			sq.ILike{"video_title": pattern},
			sq.ILike{"content": pattern},
			sq.Expr("tags::text ILIKE ?", pattern),
		})
	}

	q = q.OrderBy("updated_at DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	return q.ToSql()
}

func buildCreateNoteQuery(note models.Note) (string, []any, error) {
	return psql.Insert("notes").
		Columns("user_id", "video_id", "video_title", "video_url", "content", "tags", "timestamps", "folder_id", "is_public").
		Values(note.UserID, note.VideoID, note.VideoTitle, note.VideoURL, note.Content,
			note.Tags, note.Timestamps.Sorted(), note.FolderID, note.IsPublic).
		Suffix(returning(noteColumns)).
		ToSql()
}

// buildUpdateNoteQuery overwrites the mutable fields. updated_at is moved
// forward by at least a microsecond so two writes within the same clock tick
// still order.
func buildUpdateNoteQuery(note models.Note) (string, []any, error) {
	return psql.Update("notes").
		Set("content", note.Content).
		Set("tags", note.Tags).
		Set("timestamps", note.Timestamps.Sorted()).
		Set("folder_id", note.FolderID).
		Set("is_public", note.IsPublic).
		Set("updated_at", sq.Expr("GREATEST(NOW(), updated_at + INTERVAL '1 microsecond')")).
		Where(sq.Eq{"id": note.ID, "user_id": note.UserID}).
		Suffix(returning(noteColumns)).
		ToSql()
}

// buildFolderOwnedQuery reports whether folderID exists and belongs to
// userID. The notes.folder_id foreign key alone does not check the owner.
func buildFolderOwnedQuery(folderID string, userID int64) (string, []any, error) {
	return psql.Select("1").
		Prefix("SELECT EXISTS (").
		From("folders").
		Where(sq.Eq{"id": folderID, "user_id": userID}).
		Suffix(")").
		ToSql()
}

func buildDeleteNoteQuery(id string, userID int64) (string, []any, error) {
	return psql.Delete("notes").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildGetPublicNoteQuery(id string) (string, []any, error) {
	return psql.Update("notes").
		Set("views", sq.Expr("views + 1")).
		Where(sq.Eq{"id": id, "is_public": true}).
		Suffix(returning(noteColumns)).
		ToSql()
}

// ── folders ──────────────────────────────────────────────────────────────────

func buildListFoldersQuery(userID int64) (string, []any, error) {
	return psql.Select(folderColumns...).
		From("folders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("LOWER(name) ASC", "name ASC").
		ToSql()
}

func buildCreateFolderQuery(folder models.Folder) (string, []any, error) {
	color := folder.Color
	if color == "" {
		color = models.DefaultFolderColor
	}

	return psql.Insert("folders").
		Columns("user_id", "name", "color").
		Values(folder.UserID, folder.Name, color).
		Suffix(returning(folderColumns)).
		ToSql()
}

func buildDeleteFolderQuery(id string, userID int64) (string, []any, error) {
	return psql.Delete("folders").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// ── study sessions ───────────────────────────────────────────────────────────

func buildCreateStudySessionQuery(s models.StudySession) (string, []any, error) {
	return psql.Insert("study_sessions").
		Columns("user_id", "note_id", "kind", "cards_studied", "correct_answers", "duration_seconds").
		Values(s.UserID, s.NoteID, s.Kind, s.CardsStudied, s.CorrectAnswers, s.DurationSeconds).
		Suffix(returning(studySessionColumns)).
		ToSql()
}

func buildStudyStatsQuery(userID int64) (string, []any, error) {
	return psql.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE kind = 'flashcards')",
		"COUNT(*) FILTER (WHERE kind = 'quiz')",
		"COALESCE(SUM(cards_studied), 0)",
		"COALESCE(SUM(correct_answers), 0)",
		"COALESCE(SUM(duration_seconds), 0)",
	).
		From("study_sessions").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
