package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamps_Sorted(t *testing.T) {
	ts := Timestamps{{ID: "c", Time: 30}, {ID: "a", Time: 5}, {ID: "b", Time: 5}, {ID: "d", Time: 1.5}}

	sorted := ts.Sorted()

	require.Len(t, sorted, 4)
	assert.Equal(t, []string{"d", "a", "b", "c"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID})
	assert.Equal(t, "c", ts[0].ID, "receiver must stay untouched")
}

func TestTimestamps_ValueScan(t *testing.T) {
	v, err := Timestamps(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	var ts Timestamps
	require.NoError(t, ts.Scan([]byte(`[{"id":"1","time":12.5,"label":"intro"}]`)))
	require.Len(t, ts, 1)
	assert.Equal(t, 12.5, ts[0].Time)

	require.NoError(t, ts.Scan(nil))
	assert.Empty(t, ts)

	assert.Error(t, ts.Scan(42))
}

func TestTags_ValueScan(t *testing.T) {
	v, err := Tags{"go", "Go"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["go","Go"]`, v)

	var tags Tags
	require.NoError(t, tags.Scan(`["x"]`))
	assert.Equal(t, Tags{"x"}, tags)
}

func TestNote_HasTagIsCaseSensitive(t *testing.T) {
	n := Note{Tags: Tags{"Go"}}

	assert.True(t, n.HasTag("Go"))
	assert.False(t, n.HasTag("go"))
}

func TestNote_InFolder(t *testing.T) {
	id := "f1"
	assert.True(t, Note{FolderID: &id}.InFolder("f1"))
	assert.False(t, Note{}.InFolder("f1"))
}

func TestQuizQuestion_Valid(t *testing.T) {
	tests := []struct {
		name string
		q    QuizQuestion
		want bool
	}{
		{"valid", QuizQuestion{Question: "q", Options: []string{"a", "b", "c", "d"}, Answer: "c"}, true},
		{"answer not in options", QuizQuestion{Question: "q", Options: []string{"a", "b", "c", "d"}, Answer: "e"}, false},
		{"three options", QuizQuestion{Question: "q", Options: []string{"a", "b", "c"}, Answer: "a"}, false},
		{"empty question", QuizQuestion{Options: []string{"a", "b", "c", "d"}, Answer: "a"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Valid())
		})
	}
}

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Contains(t, info.String(), "Build commit: N/A")
}

func TestToken_BearerAndExpiry(t *testing.T) {
	now := time.Now()
	tok := Token{SignedString: "abc.def.ghi"}

	assert.Equal(t, "Bearer abc.def.ghi", tok.Bearer())
	assert.Equal(t, "abc.def.ghi", tok.String())
	assert.Zero(t, tok.ExpiresIn(now), "no exp claim")

	tok.ExpiresAt = jwt.NewNumericDate(now.Add(time.Hour))
	assert.InDelta(t, time.Hour, tok.ExpiresIn(now), float64(time.Second))

	tok.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
	assert.Zero(t, tok.ExpiresIn(now))
}

func TestUser_PublicDropsCredentials(t *testing.T) {
	u := User{UserID: 4, Login: "ann", Name: "Ann", Password: "secret1", PasswordHash: "$2a$10$x"}

	pub := u.Public()

	assert.Empty(t, pub.Password)
	assert.Empty(t, pub.PasswordHash)
	assert.Equal(t, int64(4), pub.UserID)
	assert.Equal(t, "ann", pub.Login)
}
