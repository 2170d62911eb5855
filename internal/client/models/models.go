// Package models defines the record and draft shapes the console exchanges
// with the backend. Field names follow the backend's JSON contract; decimal
// amounts travel as strings, dates as "YYYY-MM-DD".
package models

// Usuario is the account attached to an employee. Read-only on the console.
type Usuario struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type Departamento struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type DepartamentoDraft struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type Cargo struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type CargoDraft struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type Permiso struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type PermisoDraft struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// Rol references its permissions by id, matching the backend's many-to-many
// representation.
type Rol struct {
	ID       int64   `json:"id"`
	Nombre   string  `json:"nombre"`
	Permisos []int64 `json:"permisos"`
}

type RolDraft struct {
	Nombre   string  `json:"nombre"`
	Permisos []int64 `json:"permisos"`
}

type CategoriaActivo struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type CategoriaActivoDraft struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type Estado struct {
	ID      int64  `json:"id"`
	Nombre  string `json:"nombre"`
	Detalle string `json:"detalle"`
}

type EstadoDraft struct {
	Nombre  string `json:"nombre"`
	Detalle string `json:"detalle"`
}

type Ubicacion struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Detalle   string `json:"detalle"`
}

type UbicacionDraft struct {
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

type ProveedorDraft struct {
	Nombre    string `json:"nombre"`
	NIT       string `json:"nit"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Pais      string `json:"pais"`
	Direccion string `json:"direccion"`
	Estado    string `json:"estado"`
}

// ActivoFijo references its catalog rows (categoria, estado, ubicacion,
// proveedor) by id.
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

type ActivoFijoDraft struct {
	Nombre           string `json:"nombre"`
	CodigoInterno    string `json:"codigo_interno"`
	FechaAdquisicion string `json:"fecha_adquisicion"`
	ValorActual      string `json:"valor_actual"`
	VidaUtil         int    `json:"vida_util"`
	Categoria        int64  `json:"categoria"`
	Estado           int64  `json:"estado"`
	Ubicacion        int64  `json:"ubicacion"`
	Proveedor        *int64 `json:"proveedor,omitempty"`
}

// Presupuesto nests the department on read but references it by id on write.
type Presupuesto struct {
	ID           int64         `json:"id"`
	Descripcion  string        `json:"descripcion"`
	Monto        string        `json:"monto"`
	Fecha        string        `json:"fecha"`
	Departamento *Departamento `json:"departamento"`
}

type PresupuestoDraft struct {
	Descripcion    string `json:"descripcion"`
	Monto          string `json:"monto"`
	Fecha          string `json:"fecha"`
	DepartamentoID int64  `json:"departamento_id"`
}

// Empleado nests its account on read. Credential fields are write-only and
// only valid on create; edits go out as partial updates without them.
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

type EmpleadoDraft struct {
	Username  string `json:"username,omitempty"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	Email     string `json:"email,omitempty"`

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

// WithoutCredentials returns a copy safe to send as an edit payload.
func (d EmpleadoDraft) WithoutCredentials() EmpleadoDraft {
	d.Username = ""
	d.Password = ""
	d.FirstName = ""
	d.Email = ""
	return d
}

func (d Departamento) RecordID() int64    { return d.ID }
func (c Cargo) RecordID() int64           { return c.ID }
func (p Permiso) RecordID() int64         { return p.ID }
func (r Rol) RecordID() int64             { return r.ID }
func (c CategoriaActivo) RecordID() int64 { return c.ID }
func (e Estado) RecordID() int64          { return e.ID }
func (u Ubicacion) RecordID() int64       { return u.ID }
func (p Proveedor) RecordID() int64       { return p.ID }
func (a ActivoFijo) RecordID() int64      { return a.ID }
func (p Presupuesto) RecordID() int64     { return p.ID }
func (e Empleado) RecordID() int64        { return e.ID }

// ReportRow is one line of the asset report preview.
type ReportRow struct {
	ID               int64  `json:"id"`
	Nombre           string `json:"nombre"`
	Ubicacion        string `json:"ubicacion"`
	FechaAdquisicion string `json:"fecha_adquisicion"`
	ValorActual      string `json:"valor_actual"`
}

// Registration is the flat company + admin + payment payload sent to the
// registration endpoint.
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
