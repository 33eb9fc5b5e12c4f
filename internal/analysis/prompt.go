package analysis

import (
	"strings"
	"text/template"

	"github.com/abhisek/finecheck/internal/fines"
	"github.com/abhisek/finecheck/internal/verdict"
)

var systemPrompts = map[verdict.Locale]string{
	verdict.LocaleEnglish: `You are a legal assistant specializing in traffic violations and fines. Your task is to analyze traffic fine reports and provide insights on their validity and recommend actions based on the details provided.`,
	verdict.LocaleHebrew:  `אתה עוזר משפטי המתמחה בעבירות תנועה וקנסות. תפקידך הוא לנתח דוחות קנסות תעבורה ולספק תובנות לגבי תקפותם ולהמליץ על פעולות בהתבסס על הפרטים שסופקו. חשוב מאוד שכל התשובה שלך תהיה בעברית.`,
}

var (
	notSpecified = map[verdict.Locale]string{
		verdict.LocaleEnglish: "Not specified",
		verdict.LocaleHebrew:  "לא צוין",
	}
	noDescription = map[verdict.Locale]string{
		verdict.LocaleEnglish: "No additional description provided",
		verdict.LocaleHebrew:  "לא סופק תיאור נוסף",
	}
)

var userPrompts = map[verdict.Locale]*template.Template{
	verdict.LocaleEnglish: template.Must(template.New("en").Parse(`Please analyze this traffic fine report and provide a detailed assessment:

Fine Report #{{.ReportNumber}}
Date: {{.Date}}
Location: {{.Location}}
Violation: {{.Violation}}
Amount: {{.Amount}}
Due Date: {{.DueDate}}
Officer Name: {{.OfficerName}}
Badge Number: {{.BadgeNumber}}

Additional Description from the recipient:
{{.Description}}

Based on all these details, please provide:
1. A summary assessment of the validity of this fine
2. Key points to consider about the fine
3. A recommendation on what action the recipient should take
4. A determination of whether the fine appears "correct", "partially correct", or "incorrect"

Note: "correct" means the recipient has valid grounds to contest the fine. "partially" means there may be some grounds to contest or reduce the fine. "incorrect" means the fine appears valid and there are likely no grounds to contest it.

Important: Even if certain details are missing (such as officer name or badge number), assume the necessary information for analysis exists and proceed with a full analysis of the case. Missing certain details is not necessarily grounds for contesting the fine.

Format your response with clear sections for Summary, Key Points, Recommendation, and a Result field with only one of these values: "correct", "partially", or "incorrect".

Important: Please respond in English only.
`)),
	verdict.LocaleHebrew: template.Must(template.New("he").Parse(`אנא נתח את דוח הקנס הזה וספק הערכה מפורטת:

דוח קנס מספר {{.ReportNumber}}
תאריך: {{.Date}}
מיקום: {{.Location}}
סוג העבירה: {{.Violation}}
סכום: {{.Amount}}
תאריך יעד לתשלום: {{.DueDate}}
שם השוטר: {{.OfficerName}}
מספר תג: {{.BadgeNumber}}

תיאור נוסף מהמקבל:
{{.Description}}

בהתבסס על כל הפרטים האלה, אנא ספק:
1. הערכה מסכמת של תקפות הקנס הזה
2. נקודות מפתח לשקול לגבי הקנס
3. המלצה על איזו פעולה על המקבל לנקוט
4. קביעה האם הקנס נראה "נכון", "חלקית נכון", או "לא נכון"

הערה: "נכון" משמעותו שלמקבל יש עילות תקפות לערער על הקנס. "חלקית" משמעותו שיתכן ויש עילות מסוימות לערעור או להפחתת הקנס. "לא נכון" משמעותו שהקנס נראה תקף וכנראה אין עילות לערעור עליו.

חשוב: גם אם חסרים פרטים מסוימים (כמו שם השוטר או מספר תג), יש להניח שהמידע הנחוץ לניתוח קיים ולהמשיך בניתוח מלא של המקרה. מחסור בפרטים מסוימים אינו בהכרח עילה לערעור על הקנס.

פרמט את התשובה שלך עם חלקים ברורים של סיכום, נקודות מפתח, המלצה, ושדה תוצאה עם אחד מהערכים האלה בלבד: "correct", "partially", או "incorrect".

חשוב מאוד: יש להשיב בעברית בלבד.
`)),
}

// buildUserMessage renders the analysis prompt for a report.
func buildUserMessage(r fines.Report, locale verdict.Locale) (string, error) {
	data := r.Filled(notSpecified[locale])
	if strings.TrimSpace(data.Description) == "" {
		data.Description = noDescription[locale]
	}

	var b strings.Builder
	if err := userPrompts[locale].Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
