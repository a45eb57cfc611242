// 从室内外AQI测量序列估计空气交换率 ach (air changes per hour)
// 一阶混合模型 dx/dt = ach*(y(t) - x(t))
// 两种拟合方式共用同一个有界标量优化:
//   - init约束: 模拟初值固定为首个室内观测, 只搜索ach
//   - 无约束: 先对 ln(x-y) ~ t 做对数线性回归取闭式估计, 再用回归隐含初值精化ach
//
// 无约束模式要求逐点 x[i] > y[i], 否则 ln(x-y) 产生NaN并静默传播进回归
package mixrate

import (
	"fmt"
	"math"

	"github.com/gonum/stat"
	"gonum.org/v1/gonum/floats"

	"aqi/infra/staticLog"
	"aqi/ml/ols"
	"aqi/scipy/spOptimize"
)

// 构造期配置, 构造后不再变更
type Options struct {
	TLabel    string  // 时间列名, 默认 "time"
	XLabel    string  // 室内列名, 默认 "indoor"
	YLabel    string  // 室外列名, 默认 "outdoor"
	Constrain string  // "" 或 "init"
	Prec      float64 // 时间步均匀性相对精度; 零值表示取默认 1e-3, 不表示严格均匀
}

func DefaultOptions() Options {
	return Options{
		TLabel: TLABEL_DEFAULT,
		XLabel: XLABEL_DEFAULT,
		YLabel: YLABEL_DEFAULT,
		Prec:   PREC_DEFAULT,
	}
}

// 咨询级告警, 附在结果上供调用方检查, 同时走staticLog
type Advisory struct {
	Code    AdvisoryCode
	Message string
	Value   float64 // 触发告警的ach
}

// Estimate 一次估计的结果, 构造期同步算完, 之后只读
// 优化不收敛时 R/C/ACH 全为NaN且不产生诊断, 不作为错误向调用方传播
type Estimate struct {
	opts   Options
	mode   ConstrainMode
	series Series
	ts     float64

	R      float64 // 混合速率回归斜率
	C      float64 // 截距, 已折回测量单位并加回室外均值
	RValue float64 // 回归R值
	PValue float64 // 回归P值
	Stderr float64 // 回归标准误
	ACH    float64 // 推断的换气速率

	Advisories []Advisory
}

// NewEstimate 对测量序列跑完整管线: 约束校验 → 序列校验 → 时间步校验 → 拟合 → 诊断
// 结构性错误在任何数值计算之前返回
func NewEstimate(series Series, opts Options) (*Estimate, error) {
	mode := GetMyConstrainMode(opts.Constrain)
	if mode == CONSTRAIN_ERROR {
		return nil, &InvalidConstraintError{Constrain: opts.Constrain}
	}
	if opts.Prec == 0 {
		opts.Prec = PREC_DEFAULT
	}
	if err := series.Validate(); err != nil {
		return nil, err
	}
	ts, err := series.UniformStep(opts.Prec)
	if err != nil {
		return nil, err
	}

	nan := math.NaN()
	e := &Estimate{
		opts: opts, mode: mode, series: series, ts: ts,
		R: nan, C: nan, RValue: nan, PValue: nan, Stderr: nan, ACH: nan,
	}
	e.fit()
	return e, nil
}

// NewEstimateFromCSV 经CSV协作方加载后构造估计, 列名取自opts
func NewEstimateFromCSV(path string, opts Options) (*Estimate, error) {
	if opts.TLabel == "" {
		opts.TLabel = TLABEL_DEFAULT
	}
	if opts.XLabel == "" {
		opts.XLabel = XLABEL_DEFAULT
	}
	if opts.YLabel == "" {
		opts.YLabel = YLABEL_DEFAULT
	}
	series, err := LoadCSV(path, opts.TLabel, opts.XLabel, opts.YLabel)
	if err != nil {
		return nil, err
	}
	return NewEstimate(series, opts)
}

// 残差平方和: z = Predict(...) - x, 返回 z·z
func (e *Estimate) sumSquaredResiduals(x0, ach float64) float64 {
	z := Predict(e.series.T, x0, ach, e.ts, e.series.Y)
	floats.Sub(z, e.series.X)
	return floats.Dot(z, z)
}

func (e *Estimate) fit() {
	var x0 float64
	switch e.mode {
	case CONSTRAIN_INIT:
		x0 = e.series.X[0]
	default:
		// 闭式估计: x(t)-y(t) ≈ exp(c)*exp(r*t), 取对数后线性回归
		dx := make([]float64, len(e.series.X))
		for i := range dx {
			dx[i] = math.Log(e.series.X[i] - e.series.Y[i])
		}
		m := ols.Regression(e.series.T, dx)
		e.R, e.C = m.Slope, m.Intercept
		e.RValue, e.PValue, e.Stderr = m.RValue, m.PValue, m.Stderr
		// 回归隐含初值: exp(截距) + 首个室外观测
		x0 = math.Exp(m.Intercept) + e.series.Y[0]
	}

	res := spOptimize.MinimizeScalarBounded(func(ach float64) float64 {
		return e.sumSquaredResiduals(x0, ach)
	}, ACH_LOWER, ACH_UPPER)
	if !res.Success {
		// 不收敛: 以NaN编码在结果里, 无约束模式保留首轮回归的rvalue/pvalue/stderr
		e.R, e.C, e.ACH = math.NaN(), math.NaN(), math.NaN()
		return
	}
	e.ACH = res.X
	e.diagnose(x0)
}

// 诊断: 用拟合到的ach与该模式对应的x0重算轨迹, 对 ln(traj-y) ~ t 再回归一次
func (e *Estimate) diagnose(x0 float64) {
	traj := Predict(e.series.T, x0, e.ACH, e.ts, e.series.Y)
	dx := make([]float64, len(traj))
	for i := range dx {
		dx[i] = math.Log(traj[i] - e.series.Y[i])
	}
	m := ols.Regression(e.series.T, dx)
	e.R = m.Slope
	e.RValue, e.PValue, e.Stderr = m.RValue, m.PValue, m.Stderr
	// 截距折回测量单位; 这里加室外全程均值而非首值, 与x0播种不对称, 刻意保留
	e.C = math.Exp(m.Intercept) + stat.Mean(e.series.Y, nil)

	if e.ACH > 1/e.ts {
		e.advise(ACH_TOO_HIGH, "estimated ACH is too high for timestep")
	} else if e.ACH < 0 {
		e.advise(ACH_NEGATIVE, "estimated ACH is negative")
	}
}

func (e *Estimate) advise(code AdvisoryCode, msg string) {
	e.Advisories = append(e.Advisories, Advisory{Code: code, Message: msg, Value: e.ACH})
	staticLog.Log.Warnf("%s: %s (ach=%g)", code, msg, e.ACH)
}

// Timestep 返回校验后的均匀时间步
func (e *Estimate) Timestep() float64 {
	return e.ts
}

// Mode 返回本次估计的约束模式
func (e *Estimate) Mode() ConstrainMode {
	return e.mode
}

// ToDict 对外序列化视图, 恰好 r/c/ach 三个键
func (e *Estimate) ToDict() map[string]float64 {
	return map[string]float64{
		"r":   e.R,
		"c":   e.C,
		"ach": e.ACH,
	}
}

func (e *Estimate) String() string {
	return fmt.Sprint(e.ToDict())
}
