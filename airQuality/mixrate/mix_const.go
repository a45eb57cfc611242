package mixrate

// 初值约束模式
type ConstrainMode int

const (
	CONSTRAIN_NONE  ConstrainMode = iota // "" 初值不约束, 先走对数线性回归
	CONSTRAIN_INIT                       // "init" 初值约束为首个室内观测
	CONSTRAIN_ERROR                      // 非法取值
)

func (m ConstrainMode) String() string {
	switch m {
	case CONSTRAIN_NONE:
		return ""
	case CONSTRAIN_INIT:
		return "init"
	default:
		return "ERROR"
	}
}

func GetMyConstrainMode(s string) ConstrainMode {
	switch s {
	case "":
		return CONSTRAIN_NONE
	case "init":
		return CONSTRAIN_INIT
	default:
		return CONSTRAIN_ERROR
	}
}

const (
	ACH_LOWER = 0.0  // ach搜索下界
	ACH_UPPER = 10.0 // ach搜索上界, 与输入时间单位同单位

	PREC_DEFAULT = 1e-3 // 时间步均匀性相对精度

	TLABEL_DEFAULT = "time"
	XLABEL_DEFAULT = "indoor"
	YLABEL_DEFAULT = "outdoor"
)

// 咨询级告警码, 不阻断结果产出
type AdvisoryCode int

const (
	ACH_TOO_HIGH AdvisoryCode = iota // ach > 1/ts, 时间步分辨不了该速率
	ACH_NEGATIVE                     // ach < 0, 模型假定非负交换率
)

func (c AdvisoryCode) String() string {
	switch c {
	case ACH_TOO_HIGH:
		return "ACH_TOO_HIGH"
	case ACH_NEGATIVE:
		return "ACH_NEGATIVE"
	default:
		return "UNKNOWN"
	}
}
