package llm

import (
	"strings"

	"github.com/joseph-ayodele/rider-orders/constants"
)

var todaySynonyms = []string{
	`"今日完成"及数字`,
	`"今日完成单量"及数值`,
	`"今日已完成"及对应数字`,
	`"今日完成订单"及数量`,
}

var totalSynonyms = []string{
	`"总完成"及数字`,
	`"累计完成"及数值`,
	`"历史完成"及对应数字`,
	`"总完成订单"及数量`,
	`"累计订单"及数量`,
}

// BuildOrdersPrompt composes the instruction sent alongside the image. The model must
// answer with exactly "<filename>,<today>,<total>".
func BuildOrdersPrompt(filename string) string {
	var b strings.Builder
	b.WriteString("任务：从提供的骑手相关图片中提取\"今日完成单数\"和\"总完成单数\"数据。\n\n")
	b.WriteString("具体要求：\n")

	b.WriteString("1. 识别\"今日完成单数\"相关信息（包括但不限于以下表述）：\n")
	for _, s := range todaySynonyms {
		b.WriteString("   - " + s + "\n")
	}
	b.WriteString("\n2. 识别\"总完成单数\"相关信息（包括但不限于以下表述）：\n")
	for _, s := range totalSynonyms {
		b.WriteString("   - " + s + "\n")
	}

	b.WriteString("\n3. 提取规则（适用于两个字段）：\n")
	b.WriteString("   - 若能清晰识别具体数字，直接返回该数字\n")
	b.WriteString("   - 若数字模糊或部分被遮挡，返回\"" + constants.ValueAmbiguous + "\"\n")
	b.WriteString("   - 若明确显示为0，返回\"" + constants.ValueZero + "\"\n")
	b.WriteString("   - 若存在相关字段但无具体数值，返回\"" + constants.ValueNoData + "\"\n")
	b.WriteString("   - 若未找到该字段，返回\"" + constants.ValueNotFound + "\"\n")

	b.WriteString("\n4. 输出格式（严格遵守）：\n")
	b.WriteString("   仅返回\"文件名,今日完成单数,总完成单数\"格式，无其他内容\n")
	b.WriteString("   示例：\n")
	for _, ex := range [][2]string{
		{"35", "1250"},
		{constants.ValueAmbiguous, "890"},
		{"5", constants.ValueNotFound},
		{constants.ValueNotFound, constants.ValueNotFound},
	} {
		b.WriteString("   " + filename + "," + ex[0] + "," + ex[1] + "\n")
	}

	b.WriteString("\n请严格按照上述格式输出，不要添加任何解释、说明或额外字符！")
	return b.String()
}
