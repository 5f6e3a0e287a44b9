package store

import (
	"github.com/MKhiriev/mock-user-auth/models"
	"github.com/Masterminds/squirrel"
)

// Column set shared by every query that reads a full user record.
var userColumns = []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}

func (r *userRepository) insertUserQuery(user models.User) squirrel.InsertBuilder {
	return r.db.sb.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
}

func (r *userRepository) selectUserByEmailQuery(email string) squirrel.SelectBuilder {
	return r.db.sb.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"email": email})
}

func (r *userRepository) selectUserByIDQuery(id string) squirrel.SelectBuilder {
	return r.db.sb.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"id": id})
}

func (r *userRepository) updateUserQuery(user models.User) squirrel.UpdateBuilder {
	return r.db.sb.Update(user.TableName()).
		Set("name", user.Name).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Set("updated_at", user.UpdatedAt).
		Where(squirrel.Eq{"id": user.ID})
}

func (r *userRepository) deleteUserQuery(id string) squirrel.DeleteBuilder {
	return r.db.sb.Delete(models.User{}.TableName()).
		Where(squirrel.Eq{"id": id})
}

func (r *userRepository) deleteAllUsersQuery() squirrel.DeleteBuilder {
	return r.db.sb.Delete(models.User{}.TableName())
}
