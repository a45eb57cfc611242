package mixrate

// Predict 一阶混合模型的前向欧拉模拟
// 连续模型 dx/dt = ach*(y(t) - x(t)) 的离散递推:
//
//	x[n+1] = x[n]*(1 - ts*ach) + (z[n]+z[n+1])/2 * ach * ts
//
// 室外项取相邻两点均值(梯形中点); 首元素为x0; 输出与t等长
// 纯函数, 无随机性; ts*ach > 1 时递推放大为非物理解, 由诊断阶段告警
func Predict(t []float64, x0, ach, ts float64, z []float64) []float64 {
	out := make([]float64, 0, len(t))
	out = append(out, x0)
	for n := 0; n < len(t)-1; n++ {
		out = append(out, out[len(out)-1]*(1-ts*ach)+(z[n]+z[n+1])/2*ach*ts)
	}
	return out
}
