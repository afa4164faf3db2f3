package impl

import (
	"context"
	"database/sql"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/goblog/internal/db/impl/queries"
	"github.com/sidereusnuntius/goblog/internal/domain"
)

func (d *dbImpl) CreateUser(ctx context.Context, username, email, passwordHash string) (domain.ID, error) {
	now := d.timestamp()
	id, err := d.queries.CreateUser(ctx, queries.CreateUserParams{
		Username: username,
		Email:    email,
		Password: passwordHash,
		Created:  now,
		Updated:  now,
	})
	if err != nil {
		return 0, d.HandleError(err)
	}
	return domain.ID(id), nil
}

func (d *dbImpl) GetUserByID(ctx context.Context, id domain.ID) (domain.User, error) {
	row, err := d.queries.GetUserByID(ctx, int64(id))
	if err != nil {
		return domain.User{}, d.HandleError(err)
	}

	u := domain.User{
		ID:       domain.ID(row.ID),
		Username: row.Username,
		Email:    row.Email,
		Bio:      row.Bio.String,
		Created:  time.Unix(row.Created, 0),
		Updated:  time.Unix(row.Updated, 0),
	}

	if row.PictureID.Valid {
		pictureUrl, err := url.Parse(row.PictureUrl.String)
		if err != nil {
			log.Error().Err(err).Msg("failed to parse stored url: " + row.PictureUrl.String)
		} else {
			u.Picture = &domain.File{
				ID:         domain.ID(row.PictureID.Int64),
				Key:        row.PictureKey.String,
				Url:        pictureUrl,
				MimeType:   row.PictureMimeType.String,
				SizeBytes:  row.PictureSizeBytes.Int64,
				UploaderId: u.ID,
				Created:    time.Unix(row.PictureCreated.Int64, 0),
			}
		}
	}

	return u, nil
}

func (d *dbImpl) GetAuthDataByEmail(ctx context.Context, email string) (domain.Account, error) {
	u, err := d.queries.AuthUserByEmail(ctx, email)
	if err != nil {
		return domain.Account{}, d.HandleError(err)
	}

	return domain.Account{
		UserID:   domain.ID(u.ID),
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
	}, nil
}

func (d *dbImpl) EmailExists(ctx context.Context, email string) (exists bool, err error) {
	exists, err = d.queries.EmailExists(ctx, email)
	if err != nil {
		err = d.HandleError(err)
	}
	return
}

func (d *dbImpl) UpdateProfile(ctx context.Context, id domain.ID, username, bio string) error {
	return d.affected(d.queries.UpdateProfile(ctx, queries.UpdateProfileParams{
		Username: username,
		Bio: sql.NullString{
			Valid:  bio != "",
			String: bio,
		},
		Updated: d.timestamp(),
		ID:      int64(id),
	}))
}

func (d *dbImpl) SetProfilePicture(ctx context.Context, userId domain.ID, fileId *domain.ID) error {
	var picture sql.NullInt64
	if fileId != nil {
		picture = sql.NullInt64{
			Valid: true,
			Int64: int64(*fileId),
		}
	}

	return d.affected(d.queries.SetPicture(ctx, queries.SetPictureParams{
		PictureID: picture,
		Updated:   d.timestamp(),
		ID:        int64(userId),
	}))
}

func (d *dbImpl) DeleteUser(ctx context.Context, id domain.ID) error {
	return d.affected(d.queries.DeleteUser(ctx, int64(id)))
}
