package core

import (
	"net/url"
	"os"
	"testing"

	"github.com/sidereusnuntius/goblog/internal/db/impl"
	"github.com/sidereusnuntius/goblog/internal/domain"
	"github.com/sidereusnuntius/goblog/internal/events"
	"github.com/sidereusnuntius/goblog/internal/initialization"
	"github.com/sidereusnuntius/goblog/internal/mocks"
	"github.com/sidereusnuntius/goblog/internal/service"
	"github.com/sidereusnuntius/goblog/internal/state"
	"github.com/sidereusnuntius/goblog/internal/storage/filestore"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newStack wires the service to a migrated in-memory database and a file store in a temporary directory, whose
// path is returned.
func newStack(t *testing.T, name string) (service.Service, string) {
	d, err := initialization.OpenDB("file:" + name + "?mode=memory&cache=shared&_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	require.NoError(t, initialization.SetupDB(d, name))

	root := t.TempDir()
	base, _ := url.Parse("http://localhost:8080/f")
	store, err := filestore.New(root, base)
	require.NoError(t, err)

	return New(&state.State{
		DB:      impl.New(d),
		Storage: store,
		Queue:   mocks.NewMockQueue(gomock.NewController(t)),
		Events:  events.Nop{},
	}), root
}

func TestBlogScenario(t *testing.T) {
	svc, root := newStack(t, "scenario")

	alice, err := svc.Register(ctx, "alice", "alice@x.com", "pw123")
	require.NoError(t, err)

	logged, err := svc.Login(ctx, "alice@x.com", "pw123")
	require.NoError(t, err)
	require.Equal(t, alice.ID, logged.ID)

	_, err = svc.Login(ctx, "alice@x.com", "pw1234")
	require.ErrorIs(t, err, service.ErrBadPassword)

	_, err = svc.Login(ctx, "nobody@x.com", "whatever")
	require.ErrorIs(t, err, service.ErrNoSuchUser)

	bob, err := svc.Register(ctx, "bob", "bob@x.com", "secret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "bobby", "BOB@x.com", "other")
	require.ErrorIs(t, err, service.ErrEmailTaken)

	postId, err := svc.CreatePost(ctx, alice.ID, "Hello", "World", []domain.Upload{
		{Filename: "a.png", MimeType: domain.MimePNG, Content: png},
	})
	require.NoError(t, err)

	commentId, err := svc.AddComment(ctx, alice.ID, postId, "nice!")
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, bob.ID, postId, "agreed")
	require.NoError(t, err)

	// Ownership is checked for every mutation.
	_, err = svc.EditComment(ctx, bob.ID, commentId, "hacked")
	require.ErrorIs(t, err, service.ErrForbidden)
	_, err = svc.DeleteComment(ctx, bob.ID, commentId)
	require.ErrorIs(t, err, service.ErrForbidden)
	require.ErrorIs(t, svc.DeletePost(ctx, bob.ID, postId), service.ErrForbidden)
	_, err = svc.DeleteComment(ctx, alice.ID, 9999)
	require.ErrorIs(t, err, service.ErrNotFound)

	parent, err := svc.EditComment(ctx, alice.ID, commentId, "nicer!")
	require.NoError(t, err)
	require.Equal(t, postId, parent)

	details, err := svc.GetPost(ctx, postId)
	require.NoError(t, err)
	require.Equal(t, "alice", details.Author)
	require.Len(t, details.Images, 1)
	require.Len(t, details.Comments, 2)
	require.Equal(t, "nicer!", details.Comments[0].Content)
	require.Equal(t, "bob", details.Comments[1].Author)

	content, file, err := svc.OpenFile(ctx, details.Images[0].Key)
	require.NoError(t, err)
	require.Equal(t, png, content)
	require.Equal(t, domain.MimePNG, file.MimeType)

	// alice also comments on a post of bob's, and sets a profile picture.
	bobPost, err := svc.CreatePost(ctx, bob.ID, "Bob's", "post", nil)
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, alice.ID, bobPost, "hi bob")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, alice.ID, "alice", "I write", &domain.Upload{Filename: "me.png", Content: png})
	require.NoError(t, err)
	require.NotNil(t, updated.Picture)
	require.Equal(t, "I write", updated.Bio)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	profile, err := svc.GetProfile(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, profile.Posts, 1)
	require.Len(t, profile.CommentIDs, 2)

	require.NoError(t, svc.DeleteAccount(ctx, alice.ID))

	_, err = svc.GetUser(ctx, alice.ID)
	require.ErrorIs(t, err, service.ErrNotFound)
	_, err = svc.GetPost(ctx, postId)
	require.ErrorIs(t, err, service.ErrNotFound)

	remaining, err := svc.GetPost(ctx, bobPost)
	require.NoError(t, err)
	require.Empty(t, remaining.Comments)

	entries, err = os.ReadDir(root)
	require.NoError(t, err)
	require.Empty(t, entries)

	// Only alice's data is gone.
	_, err = svc.Login(ctx, "bob@x.com", "secret")
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteAccount(ctx, alice.ID), service.ErrNotFound)
}

func TestProfilePictureReplacement(t *testing.T) {
	svc, root := newStack(t, "pictures")

	u, err := svc.Register(ctx, "carol", "carol@x.com", "pw")
	require.NoError(t, err)

	first, err := svc.UpdateProfile(ctx, u.ID, "carol", "", &domain.Upload{Filename: "1.png", Content: png})
	require.NoError(t, err)
	second, err := svc.UpdateProfile(ctx, u.ID, "carol", "", &domain.Upload{Filename: "2.png", Content: png})
	require.NoError(t, err)
	require.NotEqual(t, first.Picture.Key, second.Picture.Key)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, second.Picture.Key, entries[0].Name())

	_, _, err = svc.OpenFile(ctx, first.Picture.Key)
	require.ErrorIs(t, err, service.ErrNotFound)
}
