// Package models defines the server-side records. JSON tags follow the wire
// contract the console consumes; the tenant id never leaves the server.
package models

import "encoding/json"

// Empresa is the tenant. Every other record hangs off one.
type Empresa struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	NIT    string `json:"nit"`
}

// Usuario is an account. The password hash is never serialized.
type Usuario struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	EmpresaID    int64  `json:"-"`
}

type Departamento struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type Cargo struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type Permiso struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type Rol struct {
	ID       int64   `json:"id"`
	Nombre   string  `json:"nombre"`
	Permisos []int64 `json:"permisos"`
}

type CategoriaActivo struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type Estado struct {
	ID      int64  `json:"id"`
	Nombre  string `json:"nombre"`
	Detalle string `json:"detalle"`
}

type Ubicacion struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Detalle   string `json:"detalle"`
}

type Proveedor struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	NIT       string `json:"nit"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Pais      string `json:"pais"`
	Direccion string `json:"direccion"`
	Estado    string `json:"estado"`
}

// ActivoFijo references its catalog rows by id. Money travels as a string
// and is stored in a NUMERIC column.
type ActivoFijo struct {
	ID               int64  `json:"id"`
	Nombre           string `json:"nombre"`
	CodigoInterno    string `json:"codigo_interno"`
	FechaAdquisicion string `json:"fecha_adquisicion"`
	ValorActual      string `json:"valor_actual"`
	VidaUtil         int    `json:"vida_util"`
	Categoria        int64  `json:"categoria"`
	Estado           int64  `json:"estado"`
	Ubicacion        int64  `json:"ubicacion"`
	Proveedor        *int64 `json:"proveedor"`
}

// Presupuesto nests its department on read; writes reference it by id.
type Presupuesto struct {
	ID           int64         `json:"id"`
	Descripcion  string        `json:"descripcion"`
	Monto        string        `json:"monto"`
	Fecha        string        `json:"fecha"`
	Departamento *Departamento `json:"departamento"`
}

// PresupuestoInput is the write shape for budgets.
type PresupuestoInput struct {
	Descripcion    string `json:"descripcion"`
	Monto          string `json:"monto"`
	Fecha          string `json:"fecha"`
	DepartamentoID int64  `json:"departamento_id"`
}

// Empleado nests its account on read.
type Empleado struct {
	ID           int64    `json:"id"`
	Usuario      *Usuario `json:"usuario"`
	CI           string   `json:"ci"`
	ApellidoP    string   `json:"apellido_p"`
	ApellidoM    string   `json:"apellido_m"`
	Direccion    string   `json:"direccion"`
	Telefono     string   `json:"telefono"`
	Sueldo       string   `json:"sueldo"`
	Cargo        *int64   `json:"cargo"`
	Departamento *int64   `json:"departamento"`
	Roles        []int64  `json:"roles"`
}

// EmpleadoInput is the write shape for employees. Credential fields are
// only honored on create; partial updates never carry them.
type EmpleadoInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`

	CI           string  `json:"ci"`
	ApellidoP    string  `json:"apellido_p"`
	ApellidoM    string  `json:"apellido_m"`
	Direccion    string  `json:"direccion"`
	Telefono     string  `json:"telefono"`
	Sueldo       string  `json:"sueldo"`
	Cargo        *int64  `json:"cargo"`
	Departamento *int64  `json:"departamento"`
	Roles        []int64 `json:"roles"`
}

// LogEntry is one audit record written by the console's fire-and-forget
// logger.
type LogEntry struct {
	ID        string          `json:"id"`
	Accion    string          `json:"accion"`
	Payload   json.RawMessage `json:"payload"`
	Username  string          `json:"username"`
	IP        string          `json:"ip"`
	EmpresaID int64           `json:"-"`
	CreatedAt string          `json:"created_at"`
}

// ReportRow is one line of the asset report.
type ReportRow struct {
	ID               int64  `json:"id"`
	Nombre           string `json:"nombre"`
	Ubicacion        string `json:"ubicacion"`
	FechaAdquisicion string `json:"fecha_adquisicion"`
	ValorActual      string `json:"valor_actual"`
}

// Registration is the flat payload of the public sign-up endpoint.
type Registration struct {
	EmpresaNombre  string `json:"empresa_nombre"`
	EmpresaNIT     string `json:"empresa_nit"`
	AdminFirstName string `json:"admin_first_name"`
	AdminApellidoP string `json:"admin_apellido_p"`
	AdminApellidoM string `json:"admin_apellido_m"`
	AdminCI        string `json:"admin_ci"`
	AdminEmail     string `json:"admin_email"`
	AdminUsername  string `json:"admin_username"`
	AdminPassword  string `json:"admin_password"`
	CardNumber     string `json:"card_number"`
	CardExpiry     string `json:"card_expiry"`
	CardCVC        string `json:"card_cvc"`
}
