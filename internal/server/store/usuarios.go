package store

import (
	"context"
	"database/sql"

	"github.com/dvillarroel/actifijo/internal/dbx"
	"github.com/dvillarroel/actifijo/internal/server/models"
)

// Credential is everything the token issuer needs about an account.
type Credential struct {
	Usuario       models.Usuario
	EmpresaNombre string
	IsAdmin       bool
	Roles         []string
}

// Usuarios resolves accounts for authentication and handles tenant sign-up.
type Usuarios struct {
	db *sql.DB
}

func NewUsuarios(db *sql.DB) *Usuarios {
	return &Usuarios{db: db}
}

// GetByUsername loads the account, its tenant name and its role names.
func (r *Usuarios) GetByUsername(ctx context.Context, username string) (Credential, error) {
	var c Credential
	err := r.db.QueryRowContext(ctx,
		`SELECT u.id, u.username, u.password_hash, u.first_name, u.last_name, u.email,
		        u.empresa_id, u.is_admin, e.nombre
		 FROM usuarios u
		 JOIN empresas e ON e.id = u.empresa_id
		 WHERE u.username = $1`,
		username).Scan(&c.Usuario.ID, &c.Usuario.Username, &c.Usuario.PasswordHash,
		&c.Usuario.FirstName, &c.Usuario.LastName, &c.Usuario.Email,
		&c.Usuario.EmpresaID, &c.IsAdmin, &c.EmpresaNombre)
	if err != nil {
		return Credential{}, mapDBError(err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT r.nombre
		 FROM roles r
		 JOIN empleado_roles er ON er.rol_id = r.id
		 JOIN empleados em ON em.id = er.empleado_id
		 WHERE em.usuario_id = $1
		 ORDER BY r.nombre`, c.Usuario.ID)
	if err != nil {
		return Credential{}, mapDBError(err)
	}
	defer rows.Close()

	c.Roles = []string{}
	for rows.Next() {
		var nombre string
		if err := rows.Scan(&nombre); err != nil {
			return Credential{}, mapDBError(err)
		}
		c.Roles = append(c.Roles, nombre)
	}
	if err := rows.Err(); err != nil {
		return Credential{}, mapDBError(err)
	}
	return c, nil
}

// Register creates the tenant, its admin account and the matching employee
// row in one transaction. passwordHash is the bcrypt hash of the admin
// password.
func (r *Usuarios) Register(ctx context.Context, reg models.Registration, passwordHash string) (Credential, error) {
	var c Credential
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var empresaID int64
		err := tx.QueryRowContext(ctx,
			`INSERT INTO empresas (nombre, nit) VALUES ($1, $2) RETURNING id`,
			reg.EmpresaNombre, reg.EmpresaNIT).Scan(&empresaID)
		if err != nil {
			return mapDBError(err)
		}

		var usuarioID int64
		err = tx.QueryRowContext(ctx,
			`INSERT INTO usuarios (empresa_id, username, password_hash, first_name, last_name, email, is_admin)
			 VALUES ($1, $2, $3, $4, $5, $6, TRUE)
			 RETURNING id`,
			empresaID, reg.AdminUsername, passwordHash, reg.AdminFirstName,
			reg.AdminApellidoP, reg.AdminEmail).Scan(&usuarioID)
		if err != nil {
			return mapDBError(err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO empleados (empresa_id, usuario_id, ci, apellido_p, apellido_m)
			 VALUES ($1, $2, $3, $4, $5)`,
			empresaID, usuarioID, reg.AdminCI, reg.AdminApellidoP, reg.AdminApellidoM)
		if err != nil {
			return mapDBError(err)
		}

		c = Credential{
			Usuario: models.Usuario{
				ID:        usuarioID,
				Username:  reg.AdminUsername,
				FirstName: reg.AdminFirstName,
				LastName:  reg.AdminApellidoP,
				Email:     reg.AdminEmail,
				EmpresaID: empresaID,
			},
			EmpresaNombre: reg.EmpresaNombre,
			IsAdmin:       true,
			Roles:         []string{},
		}
		return nil
	})
	if err != nil {
		return Credential{}, err
	}
	return c, nil
}
