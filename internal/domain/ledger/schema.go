// Package ledger implementa el núcleo de la consolidación contable:
// el esquema fijo de cuentas DEBE/HABER, el cálculo de celdas derivadas
// (I.S.V. 15/18%, I.S.T. 4% para hoteles y Caja y Bancos) y la
// validación de totales/balance. Todo el paquete es puro: sin I/O,
// sin estado mutable compartido.
package ledger

import "fmt"

// Tipo de negocio de la consolidación. Determina el esquema de cuentas
// y la tabla física donde se persiste.
type Tipo string

const (
	TipoGenerales Tipo = "GENERALES"
	TipoHoteles   Tipo = "HOTELES"
)

// Valida devuelve true si el tipo es uno de los dos soportados.
func (t Tipo) Valida() bool {
	return t == TipoGenerales || t == TipoHoteles
}

// Origen de una celda: digitada por el usuario o calculada por fórmula.
type Origen int

const (
	// Digitada celda editable por el usuario.
	Digitada Origen = iota
	// Derivada celda de fórmula, solo lectura en la interfaz.
	Derivada
)

// Cuenta describe una fila del esquema: clave estable (usada como
// sufijo de columna en la DB y como key en la API), nombre visible y
// el origen de cada lado (DEBE/HABER).
type Cuenta struct {
	Clave  string
	Nombre string
	Debe   Origen
	Haber  Origen
}

// Claves de las cuentas con fórmula. El resto del esquema es digitado.
const (
	ClaveCajaBancos  = "caja_bancos"
	ClaveComprasG15  = "compras_gravadas_15"
	ClaveComprasG18  = "compras_gravadas_18"
	ClaveISV15Compra = "isv_15_compras"
	ClaveISV18Compra = "isv_18_compras"
	ClaveVentasG15   = "ventas_gravadas_15"
	ClaveVentasG18   = "ventas_gravadas_18"
	ClaveISV15Venta  = "isv_15_ventas"
	ClaveISV18Venta  = "isv_18_ventas"
	ClaveIST4        = "ist_4"
)

// esquemaGenerales: las 43 cuentas del libro de consolidación para
// negocios generales, en el orden en que se muestran y se exportan.
// Caja y Bancos es derivada en ambos lados (totales cruzados); los
// I.S.V. solo en el lado que dicta su fórmula.
var esquemaGenerales = []Cuenta{
	{Clave: ClaveCajaBancos, Nombre: "Caja y Bancos", Debe: Derivada, Haber: Derivada},
	{Clave: ClaveComprasG15, Nombre: "Compras Gravadas 15%"},
	{Clave: ClaveComprasG18, Nombre: "Compras Gravadas 18%"},
	{Clave: "compras_exentas", Nombre: "Compras Exentas"},
	{Clave: ClaveISV15Compra, Nombre: "I.S.V. 15% (compras)", Debe: Derivada},
	{Clave: ClaveISV18Compra, Nombre: "I.S.V. 18% (compras)", Debe: Derivada},
	{Clave: ClaveVentasG15, Nombre: "Ventas Gravadas 15%"},
	{Clave: ClaveVentasG18, Nombre: "Ventas Gravadas 18%"},
	{Clave: ClaveISV15Venta, Nombre: "I.S.V. 15% (ventas)", Haber: Derivada},
	{Clave: ClaveISV18Venta, Nombre: "I.S.V. 18% (ventas)", Haber: Derivada},
	{Clave: "ventas_exentas", Nombre: "Ventas Exentas"},
	{Clave: "sueldos_salarios", Nombre: "Sueldos y Salarios"},
	{Clave: "honorarios_profesionales", Nombre: "Honorarios Profesionales"},
	{Clave: "alquileres", Nombre: "Alquileres"},
	{Clave: "energia_electrica", Nombre: "Energía Eléctrica"},
	{Clave: "agua", Nombre: "Agua"},
	{Clave: "telefono_internet", Nombre: "Teléfono e Internet"},
	{Clave: "papeleria_utiles", Nombre: "Papelería y Útiles"},
	{Clave: "publicidad", Nombre: "Publicidad"},
	{Clave: "viaticos", Nombre: "Viáticos"},
	{Clave: "combustibles_lubricantes", Nombre: "Combustibles y Lubricantes"},
	{Clave: "mantenimiento_vehiculos", Nombre: "Mantenimiento de Vehículos"},
	{Clave: "mantenimiento_local", Nombre: "Mantenimiento de Local"},
	{Clave: "seguros", Nombre: "Seguros"},
	{Clave: "impuestos_municipales", Nombre: "Impuestos Municipales"},
	{Clave: "tasas_servicios", Nombre: "Tasas por Servicios"},
	{Clave: "intereses_bancarios", Nombre: "Intereses Bancarios"},
	{Clave: "comisiones_bancarias", Nombre: "Comisiones Bancarias"},
	{Clave: "fletes_acarreos", Nombre: "Fletes y Acarreos"},
	{Clave: "gastos_aduaneros", Nombre: "Gastos Aduaneros"},
	{Clave: "depreciacion", Nombre: "Depreciación"},
	{Clave: "amortizacion", Nombre: "Amortización"},
	{Clave: "cuentas_por_cobrar", Nombre: "Cuentas por Cobrar"},
	{Clave: "cuentas_por_pagar", Nombre: "Cuentas por Pagar"},
	{Clave: "prestamos_bancarios", Nombre: "Préstamos Bancarios"},
	{Clave: "capital_social", Nombre: "Capital Social"},
	{Clave: "retiros_socios", Nombre: "Retiros de Socios"},
	{Clave: "aportaciones_socios", Nombre: "Aportaciones de Socios"},
	{Clave: "inventario_inicial", Nombre: "Inventario Inicial"},
	{Clave: "inventario_final", Nombre: "Inventario Final"},
	{Clave: "prestaciones_laborales", Nombre: "Prestaciones Laborales"},
	{Clave: "otros_gastos", Nombre: "Otros Gastos"},
	{Clave: "otros_ingresos", Nombre: "Otros Ingresos"},
}

// esquemaHoteles: idéntico al de generales pero inserta I.S.T. 4%
// (derivada en ambos lados) entre I.S.V. 18% (ventas) y Ventas Exentas.
var esquemaHoteles = construirEsquemaHoteles()

func construirEsquemaHoteles() []Cuenta {
	out := make([]Cuenta, 0, len(esquemaGenerales)+1)
	for _, c := range esquemaGenerales {
		out = append(out, c)
		if c.Clave == ClaveISV18Venta {
			out = append(out, Cuenta{
				Clave:  ClaveIST4,
				Nombre: "I.S.T. 4%",
				Debe:   Derivada,
				Haber:  Derivada,
			})
		}
	}
	return out
}

// Esquema devuelve el esquema de cuentas para el tipo de negocio.
// El slice devuelto es compartido y de solo lectura: no modificarlo.
func Esquema(t Tipo) []Cuenta {
	if t == TipoHoteles {
		return esquemaHoteles
	}
	return esquemaGenerales
}

// BuscarCuenta devuelve la cuenta con la clave dada dentro del esquema
// del tipo, o false si no pertenece a él.
func BuscarCuenta(t Tipo, clave string) (Cuenta, bool) {
	for _, c := range Esquema(t) {
		if c.Clave == clave {
			return c, true
		}
	}
	return Cuenta{}, false
}

// ValidarClaves verifica que todas las claves recibidas pertenezcan al
// esquema del tipo. Una clave desconocida (ej. ist_4 en GENERALES) es
// un error duro: aceptarla corrompería los totales en silencio.
func ValidarClaves(t Tipo, claves []string) error {
	for _, k := range claves {
		if _, ok := BuscarCuenta(t, k); !ok {
			return fmt.Errorf("%w: cuenta %q no existe en el esquema %s", ErrEsquema, k, t)
		}
	}
	return nil
}
