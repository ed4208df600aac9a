package ledger

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEsquema indica que el vector de cuentas no corresponde al esquema
// del tipo de negocio (clave desconocida). Es el único error "duro" del
// núcleo: el desbalance NO es un error, es un estado representable.
var ErrEsquema = errors.New("vector de cuentas no coincide con el esquema")

// Tasas de impuesto fijas (no configurables).
var (
	tasaISV15 = decimal.NewFromFloat(0.15)
	tasaISV18 = decimal.NewFromFloat(0.18)
	tasaIST4  = decimal.NewFromFloat(0.04)
)

// Celda valores DEBE/HABER de una cuenta.
type Celda struct {
	Debe  decimal.Decimal
	Haber decimal.Decimal
}

// Vector mapa clave de cuenta → celda. Un vector completo contiene
// exactamente las cuentas del esquema de su tipo; los registros
// GENERALES nunca llevan la clave ist_4 (ausente, no cero).
type Vector map[string]Celda

// Claves devuelve las claves presentes en el vector.
func (v Vector) Claves() []string {
	out := make([]string, 0, len(v))
	for k := range v {
		out = append(out, k)
	}
	return out
}

// ParseImporte convierte texto a un importe decimal de forma tolerante:
// vacío, no numérico, NaN o infinito resuelven a 0, nunca a error.
// Mantiene el libro permisivo con la digitación (un typo vale 0).
func ParseImporte(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	// Rechazar NaN/Inf antes de intentar el parse decimal.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Calcular resuelve todas las celdas derivadas a partir de las celdas
// digitadas y devuelve el vector completo para el tipo de negocio.
//
// Fórmulas (fijas):
//
//	isv_15_ventas.HABER  = ventas_gravadas_15.HABER × 0.15
//	isv_18_ventas.HABER  = ventas_gravadas_18.HABER × 0.18
//	ist_4.HABER          = ventas_gravadas_15.HABER × 0.04   (solo HOTELES)
//	isv_15_compras.DEBE  = compras_gravadas_15.DEBE × 0.15
//	isv_18_compras.DEBE  = compras_gravadas_18.DEBE × 0.18
//	caja_bancos.DEBE     = Σ HABER de todas las demás cuentas (resueltas)
//	caja_bancos.HABER    = Σ DEBE  de todas las demás cuentas (resueltas)
//
// Caja y Bancos agrega celdas ya resueltas, por eso se calcula al final;
// no hay ciclo porque se excluye a sí misma de su suma. Es una función
// pura: mismo input, mismo output, sin efectos.
func Calcular(entradas Vector, tipo Tipo) (Vector, error) {
	if err := ValidarClaves(tipo, entradas.Claves()); err != nil {
		return nil, err
	}

	esquema := Esquema(tipo)
	out := make(Vector, len(esquema))

	// Copiar solo los lados digitados; los derivados parten de cero y
	// se sobrescriben por fórmula (idempotencia: alimentar la salida de
	// vuelta produce el mismo resultado).
	for _, c := range esquema {
		in := entradas[c.Clave]
		var celda Celda
		if c.Debe == Digitada {
			celda.Debe = in.Debe
		}
		if c.Haber == Digitada {
			celda.Haber = in.Haber
		}
		out[c.Clave] = celda
	}

	// Fórmulas 1-5: dependen solo de celdas digitadas.
	setHaber(out, ClaveISV15Venta, out[ClaveVentasG15].Haber.Mul(tasaISV15).Round(2))
	setHaber(out, ClaveISV18Venta, out[ClaveVentasG18].Haber.Mul(tasaISV18).Round(2))
	if tipo == TipoHoteles {
		setHaber(out, ClaveIST4, out[ClaveVentasG15].Haber.Mul(tasaIST4).Round(2))
	}
	setDebe(out, ClaveISV15Compra, out[ClaveComprasG15].Debe.Mul(tasaISV15).Round(2))
	setDebe(out, ClaveISV18Compra, out[ClaveComprasG18].Debe.Mul(tasaISV18).Round(2))

	// Caja y Bancos: totales cruzados sobre el resto del esquema ya
	// resuelto. Se suma primero y se redondea una sola vez.
	var sumaDebe, sumaHaber decimal.Decimal
	for _, c := range esquema {
		if c.Clave == ClaveCajaBancos {
			continue
		}
		celda := out[c.Clave]
		sumaDebe = sumaDebe.Add(celda.Debe)
		sumaHaber = sumaHaber.Add(celda.Haber)
	}
	out[ClaveCajaBancos] = Celda{
		Debe:  sumaHaber.Round(2),
		Haber: sumaDebe.Round(2),
	}

	return out, nil
}

func setDebe(v Vector, clave string, d decimal.Decimal) {
	celda := v[clave]
	celda.Debe = d
	v[clave] = celda
}

func setHaber(v Vector, clave string, d decimal.Decimal) {
	celda := v[clave]
	celda.Haber = d
	v[clave] = celda
}
