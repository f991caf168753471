package catalog

import "newtab-feed/internal/domain/entity"

var gradients = []entity.Gradient{
	{Name: "极光紫", Colors: []string{"#667eea", "#764ba2"}},
	{Name: "海洋蓝", Colors: []string{"#2193b0", "#6dd5ed"}},
	{Name: "日落橙", Colors: []string{"#ee0979", "#ff6a00"}},
	{Name: "森林绿", Colors: []string{"#134e5e", "#71b280"}},
	{Name: "薰衣草", Colors: []string{"#a18cd1", "#fbc2eb"}},
	{Name: "烈焰红", Colors: []string{"#f12711", "#f5af19"}},
	{Name: "深海蓝", Colors: []string{"#0f0c29", "#302b63", "#24243e"}},
	{Name: "蜜桃粉", Colors: []string{"#ffecd2", "#fcb69f"}},
	{Name: "薄荷绿", Colors: []string{"#00b09b", "#96c93d"}},
	{Name: "暗夜黑", Colors: []string{"#232526", "#414345"}},
	{Name: "樱花粉", Colors: []string{"#ff9a9e", "#fecfef"}},
	{Name: "天空蓝", Colors: []string{"#56ccf2", "#2f80ed"}},
	{Name: "葡萄紫", Colors: []string{"#8e2de2", "#4a00e0"}},
	{Name: "柠檬黄", Colors: []string{"#f7971e", "#ffd200"}},
	{Name: "极地冰", Colors: []string{"#e6dada", "#274046"}},
	{Name: "珊瑚橙", Colors: []string{"#ff9966", "#ff5e62"}},
	{Name: "星空", Colors: []string{"#0f2027", "#203a43", "#2c5364"}},
	{Name: "彩虹", Colors: []string{"#f093fb", "#f5576c"}},
	{Name: "翡翠绿", Colors: []string{"#11998e", "#38ef7d"}},
	{Name: "玫瑰金", Colors: []string{"#f4c4f3", "#fc67fa"}},
	{Name: "冰川", Colors: []string{"#c9d6ff", "#e2e2e2"}},
	{Name: "热带", Colors: []string{"#00f260", "#0575e6"}},
	{Name: "秋叶", Colors: []string{"#d38312", "#a83279"}},
	{Name: "午夜", Colors: []string{"#0f0c29", "#302b63"}},
}

// Gradients returns the gradient presets.
func Gradients() []entity.Gradient {
	out := make([]entity.Gradient, len(gradients))
	for i, g := range gradients {
		out[i] = entity.Gradient{Name: g.Name, Colors: append([]string(nil), g.Colors...)}
	}
	return out
}
