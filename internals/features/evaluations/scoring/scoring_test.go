package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siggip_backend/internals/constants"
)

func nota(v float64) *float64 { return &v }

func draftCompleto(numAreas, numCompetencias int) Draft {
	d := Draft{
		MaestroGuia: Supervisor{NombreCompleto: "María Soto", Cargo: "Jefa de Taller"},
	}
	for i := 0; i < numAreas; i++ {
		d.Areas = append(d.Areas, AreaGrade{AreaID: "a", Nota: nota(6.0)})
	}
	for i := 0; i < numCompetencias; i++ {
		d.Empleabilidad = append(d.Empleabilidad, EmployabilityGrade{CompetenciaID: "c", NivelLogro: constants.NivelBueno})
	}
	return d
}

// Escenario A: 3 áreas con nota, 5 competencias en "bueno", sin tareas,
// maestro guía con nombre y cargo → 40 + 40 + 0 + 10 = 90.
func TestComputeProgressEscenarioA(t *testing.T) {
	d := draftCompleto(3, 5)
	assert.Equal(t, 90, ComputeProgress(d))
}

// Escenario B: todo vacío → 0.
func TestComputeProgressEscenarioB(t *testing.T) {
	d := Draft{
		Areas: []AreaGrade{{}, {}, {}},
		Empleabilidad: []EmployabilityGrade{
			{}, {}, {}, {}, {},
		},
	}
	assert.Equal(t, 0, ComputeProgress(d))
}

// Escenario C: todo completo incluida una tarea realizada → 100.
func TestComputeProgressEscenarioC(t *testing.T) {
	d := draftCompleto(3, 5)
	d.Tareas = append(d.Tareas, TaskGrade{TareaID: "t", NivelLogro: constants.NivelExcelente, Realizada: true})

	assert.Equal(t, 100, ComputeProgress(d))
	assert.Nil(t, ValidateGates(d))
}

func TestComputeProgressParcial(t *testing.T) {
	// 1 de 2 áreas con nota → 20 de los 40 de áreas
	d := Draft{
		Areas: []AreaGrade{
			{Nota: nota(5.5)},
			{},
		},
	}
	assert.Equal(t, 20, ComputeProgress(d))
}

func TestComputeProgressRedondeo(t *testing.T) {
	// 1 de 3 áreas → 13.33 → redondea a 13
	d := Draft{
		Areas: []AreaGrade{{Nota: nota(4.0)}, {}, {}},
	}
	assert.Equal(t, 13, ComputeProgress(d))

	// 2 de 3 áreas → 26.67 → redondea a 27
	d.Areas[1].Nota = nota(4.0)
	assert.Equal(t, 27, ComputeProgress(d))
}

// P1: el avance siempre está en [0, 100].
func TestComputeProgressBounds(t *testing.T) {
	drafts := []Draft{
		{},
		draftCompleto(10, 10),
		{Areas: []AreaGrade{{Nota: nota(9.9)}}},  // nota fuera de rango no cuenta
		{Areas: []AreaGrade{{Nota: nota(-1.0)}}}, // tampoco
		{Tareas: []TaskGrade{{Realizada: true, NivelLogro: "otro"}}},
	}
	for _, d := range drafts {
		p := ComputeProgress(d)
		assert.GreaterOrEqual(t, p, 0)
		assert.LessOrEqual(t, p, 100)
	}
}

// P2: completar un área que faltaba nunca baja el avance.
func TestComputeProgressMonotonia(t *testing.T) {
	d := Draft{
		Areas: []AreaGrade{
			{Nota: nota(6.0)},
			{},
			{},
		},
	}
	antes := ComputeProgress(d)
	d.Areas[1].Nota = nota(4.5)
	despues := ComputeProgress(d)
	assert.GreaterOrEqual(t, despues, antes)
}

// P3: sin áreas ni competencias no hay división por cero; el avance depende
// solo de tareas y maestro guía.
func TestComputeProgressSinReferencia(t *testing.T) {
	d := Draft{
		Tareas:      []TaskGrade{{Realizada: true, NivelLogro: constants.NivelSuficiente}},
		MaestroGuia: Supervisor{NombreCompleto: "Pedro Rojas", Cargo: "Supervisor"},
	}
	assert.Equal(t, 20, ComputeProgress(d))

	assert.Equal(t, 0, ComputeProgress(Draft{}))
}

// La cobertura parcial de tareas no da crédito parcial: es binario.
func TestTareasCreditoBinario(t *testing.T) {
	d := Draft{
		Tareas: []TaskGrade{
			{Realizada: true, NivelLogro: constants.NivelBueno},
			{Realizada: false},
			{Realizada: false},
		},
	}
	assert.Equal(t, 10, ComputeProgress(d))

	// tarea realizada pero sin nivel no cuenta
	d2 := Draft{Tareas: []TaskGrade{{Realizada: true}}}
	assert.Equal(t, 0, ComputeProgress(d2))
}

// P4: reglas de cierre.
func TestValidateGates(t *testing.T) {
	t.Run("área sin nota bloquea en paso 1", func(t *testing.T) {
		d := draftCompleto(3, 5)
		d.Areas[1].Nota = nil
		gate := ValidateGates(d)
		require.NotNil(t, gate)
		assert.Equal(t, PasoAreas, gate.Paso)
	})

	t.Run("nota fuera de rango bloquea en paso 1", func(t *testing.T) {
		d := draftCompleto(3, 5)
		d.Areas[0].Nota = nota(7.5)
		gate := ValidateGates(d)
		require.NotNil(t, gate)
		assert.Equal(t, PasoAreas, gate.Paso)
	})

	t.Run("empleabilidad sin nivel bloquea en paso 3", func(t *testing.T) {
		d := draftCompleto(3, 5)
		d.Empleabilidad[4].NivelLogro = ""
		gate := ValidateGates(d)
		require.NotNil(t, gate)
		assert.Equal(t, PasoEmpleabilidad, gate.Paso)
	})

	// Escenario D: todo pasa salvo el cargo del maestro guía → paso 4.
	t.Run("cargo vacío bloquea en paso 4", func(t *testing.T) {
		d := draftCompleto(3, 5)
		d.MaestroGuia.Cargo = "   "
		gate := ValidateGates(d)
		require.NotNil(t, gate)
		assert.Equal(t, PasoRevision, gate.Paso)
	})

	t.Run("nombre vacío bloquea en paso 4", func(t *testing.T) {
		d := draftCompleto(3, 5)
		d.MaestroGuia.NombreCompleto = ""
		gate := ValidateGates(d)
		require.NotNil(t, gate)
		assert.Equal(t, PasoRevision, gate.Paso)
	})

	// P6: si se ingresó RUT, debe pasar el dígito verificador.
	t.Run("RUT inválido bloquea en paso 4", func(t *testing.T) {
		d := draftCompleto(3, 5)
		d.MaestroGuia.Rut = "12345678-4"
		gate := ValidateGates(d)
		require.NotNil(t, gate)
		assert.Equal(t, PasoRevision, gate.Paso)
	})

	t.Run("RUT válido pasa", func(t *testing.T) {
		d := draftCompleto(3, 5)
		d.MaestroGuia.Rut = "12.345.678-5"
		assert.Nil(t, ValidateGates(d))
	})

	t.Run("sin RUT también pasa", func(t *testing.T) {
		d := draftCompleto(3, 5)
		d.MaestroGuia.Rut = ""
		assert.Nil(t, ValidateGates(d))
	})

	// las tareas no bloquean el cierre aunque no haya ninguna evaluada
	t.Run("sin tareas igual se puede finalizar", func(t *testing.T) {
		d := draftCompleto(3, 5)
		d.Tareas = nil
		assert.Nil(t, ValidateGates(d))
	})
}

func TestComputeBreakdown(t *testing.T) {
	d := draftCompleto(4, 2)
	d.Areas[3].Nota = nil // 3 de 4 áreas

	b := ComputeBreakdown(d)
	assert.InDelta(t, 30.0, b.Areas, 0.001)
	assert.InDelta(t, 40.0, b.Empleabilidad, 0.001)
	assert.Equal(t, 0.0, b.Tareas)
	assert.Equal(t, 10.0, b.MaestroGuia)
	assert.Equal(t, 80, b.Total)
}
