package impl

import (
	"context"
	"database/sql"
	"net/url"
	"os"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/goblog/internal/db"
	"github.com/sidereusnuntius/goblog/internal/domain"
	"github.com/sidereusnuntius/goblog/internal/initialization"
	"github.com/stretchr/testify/require"
)

var DB db.DB
var sqlDB *sql.DB
var ctx = context.Background()

func TestMain(m *testing.M) {
	d, err := initialization.OpenDB("file:temp?mode=memory&cache=shared&_foreign_keys=on")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open test database")
	}

	if err = initialization.SetupDB(d, "temp"); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate test database")
	}

	sqlDB = d
	DB = New(d)
	code := m.Run()
	d.Close()
	os.Exit(code)
}

func newFile(t *testing.T, key string, uploader domain.ID) domain.File {
	u, err := url.Parse("http://localhost/f/" + key)
	require.NoError(t, err)
	return domain.File{
		Key:        key,
		Url:        u,
		MimeType:   domain.MimePNG,
		SizeBytes:  42,
		UploaderId: uploader,
	}
}

func TestUsers(t *testing.T) {
	id, err := DB.CreateUser(ctx, "alice", "alice@users.test", "hash")
	require.NoError(t, err)

	_, err = DB.CreateUser(ctx, "alice2", "alice@users.test", "hash")
	require.ErrorIs(t, err, db.ErrConflict)

	exists, err := DB.EmailExists(ctx, "alice@users.test")
	require.NoError(t, err)
	require.True(t, exists)

	account, err := DB.GetAuthDataByEmail(ctx, "alice@users.test")
	require.NoError(t, err)
	require.Equal(t, id, account.UserID)
	require.Equal(t, "hash", account.Password)

	_, err = DB.GetAuthDataByEmail(ctx, "nobody@users.test")
	require.ErrorIs(t, err, db.ErrNotFound)

	require.NoError(t, DB.UpdateProfile(ctx, id, "alice b", "bio"))

	fileId, err := DB.SaveFile(ctx, newFile(t, "users-pic.png", id))
	require.NoError(t, err)
	require.NoError(t, DB.SetProfilePicture(ctx, id, &fileId))

	u, err := DB.GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "alice b", u.Username)
	require.Equal(t, "bio", u.Bio)
	require.NotNil(t, u.Picture)
	require.Equal(t, "users-pic.png", u.Picture.Key)
	require.Equal(t, "http://localhost/f/users-pic.png", u.Picture.Url.String())

	// Deleting the file record clears the picture.
	require.NoError(t, DB.DeleteFile(ctx, fileId))
	u, err = DB.GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Nil(t, u.Picture)

	require.NoError(t, DB.DeleteUser(ctx, id))
	require.ErrorIs(t, DB.DeleteUser(ctx, id), db.ErrNotFound)
	_, err = DB.GetUserByID(ctx, id)
	require.ErrorIs(t, err, db.ErrNotFound)
}

func TestPostsAndComments(t *testing.T) {
	author, err := DB.CreateUser(ctx, "author", "author@posts.test", "hash")
	require.NoError(t, err)
	reader, err := DB.CreateUser(ctx, "reader", "reader@posts.test", "hash")
	require.NoError(t, err)

	postId, err := DB.CreatePost(ctx, domain.Post{Title: "Hello", Content: "World", AuthorID: author}, []domain.File{
		newFile(t, "posts-1.png", author),
		newFile(t, "posts-2.png", author),
	})
	require.NoError(t, err)

	post, err := DB.GetPost(ctx, postId)
	require.NoError(t, err)
	require.Equal(t, "Hello", post.Title)
	require.Equal(t, "author", post.Author)
	require.Len(t, post.Images, 2)
	require.Equal(t, "posts-1.png", post.Images[0].Key)

	posts, err := DB.ListPostsByAuthor(ctx, author)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Len(t, posts[0].Images, 2)

	commentId, err := DB.CreateComment(ctx, domain.Comment{Content: "nice!", PostID: postId, AuthorID: reader})
	require.NoError(t, err)

	require.NoError(t, DB.UpdateComment(ctx, commentId, "nicer!"))
	require.ErrorIs(t, DB.UpdateComment(ctx, 9999, "x"), db.ErrNotFound)

	comments, err := DB.ListCommentsByPost(ctx, postId)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, "nicer!", comments[0].Content)
	require.Equal(t, "reader", comments[0].Author)

	ids, err := DB.ListCommentIDsByAuthor(ctx, reader)
	require.NoError(t, err)
	require.Equal(t, []domain.ID{commentId}, ids)

	// A post with comments cannot be deleted before them.
	require.Error(t, DB.DeletePost(ctx, postId))

	n, err := DB.DeleteCommentsByPost(ctx, postId)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	require.ErrorIs(t, DB.DeleteComment(ctx, commentId), db.ErrNotFound)

	require.NoError(t, DB.DeletePost(ctx, postId))
	_, err = DB.GetPost(ctx, postId)
	require.ErrorIs(t, err, db.ErrNotFound)

	// The image records outlive the post until they are deleted explicitly.
	files, err := DB.ListFilesByUploader(ctx, author)
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		require.NoError(t, DB.DeleteFile(ctx, f.ID))
	}
}

func TestCreatePostRollback(t *testing.T) {
	author, err := DB.CreateUser(ctx, "rollback", "rollback@posts.test", "hash")
	require.NoError(t, err)

	// Both images share a key, so the second insert fails and nothing is kept.
	_, err = DB.CreatePost(ctx, domain.Post{Title: "T", Content: "C", AuthorID: author}, []domain.File{
		newFile(t, "rollback.png", author),
		newFile(t, "rollback.png", author),
	})
	require.ErrorIs(t, err, db.ErrConflict)

	posts, err := DB.ListPostsByAuthor(ctx, author)
	require.NoError(t, err)
	require.Empty(t, posts)

	_, err = DB.GetFileByKey(ctx, "rollback.png")
	require.ErrorIs(t, err, db.ErrNotFound)
}

func TestListPosts(t *testing.T) {
	author, err := DB.CreateUser(ctx, "lister", "lister@posts.test", "hash")
	require.NoError(t, err)

	first, err := DB.CreatePost(ctx, domain.Post{Title: "first", Content: "c", AuthorID: author}, nil)
	require.NoError(t, err)
	second, err := DB.CreatePost(ctx, domain.Post{Title: "second", Content: "c", AuthorID: author}, nil)
	require.NoError(t, err)

	posts, err := DB.ListPosts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, second, posts[0].ID)
	require.Equal(t, first, posts[1].ID)
	require.Equal(t, "lister", posts[0].Author)
}
