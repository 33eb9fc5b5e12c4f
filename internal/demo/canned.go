package demo

var (
	labelsEN = [4]string{"Summary", "Key Points", "Recommendation", "Result"}
	labelsHE = [4]string{"סיכום", "נקודות מפתח", "המלצה", "תוצאה"}
)

var analysesEN = []cannedAnalysis{
	{
		summary: "Based on a thorough review of your fine details, there appear to be legitimate grounds for contesting this violation. Several procedural and technical issues are identified that may invalidate the fine.",
		keyPoints: []string{
			"The time and location details suggest possible improper signage or markings",
			"The equipment used for recording this violation may not have been properly calibrated",
			"The specific wording of the violation may not align with current regulations",
			"Similar cases have been successfully appealed in the past based on comparable circumstances",
		},
		recommendation: "We recommend contesting this fine through the formal appeals process. The specific violations noted in our analysis provide strong grounds for having the fine reduced or dismissed entirely.",
		result:         "correct",
		labels:         labelsEN,
	},
	{
		summary: "After analyzing your fine, we have found some potential issues with how it was issued, though the underlying violation itself appears valid. There may be grounds for requesting a reduction rather than a complete dismissal.",
		keyPoints: []string{
			"The violation itself appears to be legitimate based on the described circumstances",
			"The fine amount seems disproportionate compared to similar violations",
			"There may be mitigating factors not considered when the fine was issued",
			"Your driving record and history could be relevant in negotiating the penalty",
		},
		recommendation: "Consider requesting a reduction in the fine amount or alternative penalties such as traffic school. While complete dismissal is unlikely, there are grounds to negotiate more favorable terms.",
		result:         "partially",
		labels:         labelsEN,
	},
	{
		summary: "After a thorough analysis of your fine, we have determined that it appears to be valid according to current traffic regulations. The documentation and circumstances described align with standard enforcement practices.",
		keyPoints: []string{
			"The violation is clearly defined and properly documented",
			"The fine amount is consistent with current penalty schedules",
			"No procedural errors were identified in how the fine was issued",
			"The evidence provided strongly supports the violation charge",
		},
		recommendation: "Based on our analysis, we recommend paying this fine before the due date to avoid additional penalties. Contesting this fine would likely be unsuccessful given the clear documentation and proper procedure followed.",
		result:         "incorrect",
		labels:         labelsEN,
	},
}

var analysesHE = []cannedAnalysis{
	{
		summary: "לאחר בחינה יסודית של פרטי הקנס, נראה שקיימות עילות לגיטימיות לערער על העבירה. זוהו מספר ליקויים פרוצדורליים וטכניים שעשויים לבטל את הקנס.",
		keyPoints: []string{
			"פרטי השעה והמיקום מעידים על שילוט או סימון לקויים",
			"ייתכן שהמכשיר שתיעד את העבירה לא כויל כראוי",
			"ניסוח העבירה אינו תואם בהכרח את התקנות העדכניות",
			"ערעורים במקרים דומים התקבלו בעבר",
		},
		recommendation: "מומלץ לערער על הקנס בהליך הערעור הרשמי. הליקויים שצוינו מהווים עילה חזקה להפחתת הקנס או לביטולו המלא.",
		result:         "נכון",
		labels:         labelsHE,
	},
	{
		summary: "לאחר ניתוח הקנס נמצאו מספר בעיות באופן הנפקתו, אם כי העבירה עצמה נראית תקפה. ייתכן שיש עילה לבקש הפחתה במקום ביטול מלא.",
		keyPoints: []string{
			"העבירה עצמה נראית לגיטימית לפי הנסיבות שתוארו",
			"סכום הקנס נראה לא מידתי ביחס לעבירות דומות",
			"ייתכן שנסיבות מקלות לא נשקלו בעת מתן הקנס",
			"עבר הנהיגה שלך עשוי לסייע במשא ומתן על הקנס",
		},
		recommendation: "כדאי לבקש הפחתה של סכום הקנס או עונש חלופי. ביטול מלא אינו סביר, אך יש מקום למשא ומתן.",
		result:         "חלקית",
		labels:         labelsHE,
	},
	{
		summary: "לאחר ניתוח יסודי נמצא כי הקנס תקף לפי תקנות התעבורה הנוכחיות. התיעוד והנסיבות שתוארו תואמים נהלי אכיפה רגילים.",
		keyPoints: []string{
			"העבירה מוגדרת בבירור ומתועדת כראוי",
			"סכום הקנס תואם את לוח הקנסות הנוכחי",
			"לא נמצאו טעויות פרוצדורליות בהנפקת הקנס",
			"הראיות תומכות היטב באישום",
		},
		recommendation: "מומלץ לשלם את הקנס לפני המועד האחרון כדי להימנע מתוספות. ערעור כנראה לא יצליח.",
		result:         "לא נכון",
		labels:         labelsHE,
	},
}

var argumentsEN = []string{
	"Examine the signage at the location - Was the signage clear, visible, and not obstructed by trees or other obstacles.",
	"Inaccuracies in the citation - Are the details in the report (time, location, violation description) accurate and match reality.",
	"Technical issues with equipment - If speed measurement or other technical testing was involved, the device may not have been properly calibrated.",
	"Procedural errors - Did the officer follow all required enforcement procedures (proper identification, presenting credentials, full explanation of the violation).",
	"Unusual road conditions or weather - Conditions that might affect driving behavior or obscure markings/signage.",
	"Contradictory evidence - Are there witnesses or objective evidence (photos, videos) that contradict the claims in the citation.",
}

var argumentsHE = []string{
	"בחינת השילוט במקום האירוע - האם השילוט היה ברור, נראה לעין, ולא מוסתר על ידי עצים או מכשולים אחרים.",
	"אי-דיוקים בדוח - האם הפרטים בדוח (זמן, מיקום, תיאור העבירה) מדויקים ותואמים את המציאות.",
	"בעיות טכניות במכשור - אם מדובר במדידת מהירות או בדיקה טכנית אחרת, ייתכן שהמכשיר לא היה מכויל כראוי.",
	"טעויות פרוצדורליות - האם השוטר פעל בהתאם לכל נהלי האכיפה הנדרשים (זיהוי נאות, הצגת תעודה, הסבר מלא על העבירה).",
	"מצב כביש או תנאי מזג אוויר חריגים - תנאים שעשויים להשפיע על התנהגות הנהיגה או לטשטש סימונים/שילוט.",
	"עדויות סותרות - האם יש עדים או ראיות אובייקטיביות (תמונות, סרטונים) שסותרים את הטענות בדוח.",
}

const letterEN = `{today}

123 Main Street, Anytown, CA 94538

Traffic Enforcement Department
City of Anytown
789 Government Plaza
Anytown, CA 94538

Subject: Request for Cancellation of Traffic Citation #{report}

To Whom It May Concern:

I am writing in regard to Traffic Citation #{report} issued on {date} for "{violation}" at location {location}.

After careful review of the circumstances and the citation itself, I respectfully request that this fine be dismissed for the following reasons:

1. There was inadequate or unclear signage at the location indicating the relevant prohibition or restriction.
2. The documentation of the alleged violation is insufficient and does not provide adequate evidence of the claimed offense.
3. There are mitigating circumstances that were not taken into account when the citation was issued.
4. There is reasonable doubt regarding the accuracy of the measurement or identification made by the officer or the equipment used.

I understand the importance of traffic regulations and their enforcement for public safety. However, I believe that in this specific instance, the citation was issued in error or under circumstances that warrant reconsideration.

I kindly request that you review this citation based on the points I have raised and consider dismissing it. If additional information or supporting documentation is needed, I would be happy to provide it upon request.

Thank you for your attention to this matter. I look forward to your response.

Sincerely,

____________________
Signature

____________________
Full Name

____________________
Driver's License Number

____________________
Date`

const letterHE = `{today}

רחוב האלון 123, תל אביב, 6120101

לכבוד
מחלקת אכיפת תנועה
עיריית תל אביב
רחוב אבן גבירול 69
תל אביב, 6420128

הנדון: בקשה לביטול דוח תנועה מספר {report}

שלום רב,

אני פונה אליכם בנוגע לדוח התנועה שמספרו {report}, אשר הונפק בתאריך {date} בגין "{violation}" במיקום {location}.

לאחר בחינה מדוקדקת של נסיבות האירוע והדוח עצמו, אני מבקש/ת לערער על תקפות הדוח מהסיבות הבאות:

1. לא הייתה שילוט מספק או ברור במקום המציין את האיסור או ההגבלה הרלוונטית.
2. התיעוד של העבירה לוקה בחסר ואינו מספק הוכחה מספקת לביצוע העבירה הנטענת.
3. קיימות נסיבות מקלות אשר לא נלקחו בחשבון בעת הנפקת הדוח.
4. קיים ספק סביר לגבי דיוק המדידה או הזיהוי שבוצע על ידי השוטר או המכשיר שנעשה בו שימוש.

אני מבקש/ת כי תבחנו מחדש את הדוח לאור הנקודות שהעליתי ותשקלו לבטל אותו. במידה ויש צורך במידע נוסף או במסמכים תומכים, אשמח לספק אותם לפי דרישה.

אני מודה מראש על תשומת הלב והטיפול בבקשתי.

בכבוד רב,

____________________
חתימה

____________________
שם מלא

____________________
מספר תעודת זהות

____________________
תאריך`
