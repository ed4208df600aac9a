package ledger

import "github.com/shopspring/decimal"

// toleranciaBalance: una consolidación se considera balanceada si
// |diferencia| es estrictamente menor a un centavo. La tolerancia
// absorbe residuo de redondeo, no desbalance real.
var toleranciaBalance = decimal.New(1, -2) // 0.01

// Totales resultado de reducir un vector completo a su veredicto de
// balance. Diferencia lleva signo (DEBE − HABER).
type Totales struct {
	TotalDebe  decimal.Decimal
	TotalHaber decimal.Decimal
	Diferencia decimal.Decimal
	Balanceado bool
}

// CalcularTotales suma los lados DEBE y HABER de todas las cuentas del
// esquema del tipo y clasifica el balance. Nunca falla: cuentas
// ausentes en el vector aportan 0, y el veredicto es consultivo: una
// consolidación desbalanceada se persiste igual, con advertencia.
//
// El balance se clasifica sobre la diferencia SIN redondear (por eso
// 0.009999 balancea y 0.01 exacto no); los montos reportados sí se
// redondean a 2 decimales.
func CalcularTotales(v Vector, tipo Tipo) Totales {
	var totalDebe, totalHaber decimal.Decimal
	for _, c := range Esquema(tipo) {
		celda := v[c.Clave]
		totalDebe = totalDebe.Add(celda.Debe)
		totalHaber = totalHaber.Add(celda.Haber)
	}
	dif := totalDebe.Sub(totalHaber)
	return Totales{
		TotalDebe:  totalDebe.Round(2),
		TotalHaber: totalHaber.Round(2),
		Diferencia: dif.Round(2),
		Balanceado: dif.Abs().LessThan(toleranciaBalance),
	}
}
