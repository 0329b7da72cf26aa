// Package quotes holds the quote bank used by quote mode.
package quotes

import "github.com/verte-zerg/akshara/internal/model"

var builtin = []model.Quote{
	{Text: "सत्यमेव जयते", Source: "मुण्डकोपनिषद", Length: model.LengthShort},
	{Text: "अहिंसा परमो धर्मः", Source: "महाभारत", Length: model.LengthShort},
	{Text: "वसुधैव कुटुम्बकम", Source: "महोपनिषद", Length: model.LengthShort},
	{Text: "विद्या ददाति विनयम", Source: "सुभाषित", Length: model.LengthShort},
	{Text: "धर्मो रक्षति रक्षितः", Source: "मनुस्मृति", Length: model.LengthShort},
	{Text: "योगः कर्मसु कौशलम", Source: "भगवद्गीता", Length: model.LengthShort},
	{Text: "सर्वे भवन्तु सुखिनः", Source: "शान्ति मन्त्र", Length: model.LengthShort},
	{Text: "जहाँ चाह वहाँ राह", Source: "लोकोक्ति", Length: model.LengthShort},
	{Text: "करो या मरो", Source: "महात्मा गाँधी", Length: model.LengthShort},
	{Text: "एकता में बल है", Source: "लोकोक्ति", Length: model.LengthShort},
	{Text: "ज्ञान ही शक्ति है", Source: "लोकोक्ति", Length: model.LengthShort},
	{Text: "समय बहुत बलवान है", Source: "लोकोक्ति", Length: model.LengthShort},
	{Text: "सादा जीवन उच्च विचार", Source: "लोकोक्ति", Length: model.LengthShort},
	{Text: "धैर्य का फल मीठा होता है", Source: "लोकोक्ति", Length: model.LengthShort},
	{Text: "परिश्रम सफलता की कुंजी है", Source: "लोकोक्ति", Length: model.LengthShort},
	{Text: "बूँद बूँद से सागर भरता है मेहनत से सफलता मिलती है", Source: "लोकोक्ति", Length: model.LengthMedium},
	{Text: "जो मेहनत करता है उसे सफलता अवश्य मिलती है", Source: "लोकोक्ति", Length: model.LengthMedium},
	{Text: "शिक्षा सबसे बड़ा धन है जो कोई चुरा नहीं सकता", Source: "चाणक्य", Length: model.LengthMedium},
	{Text: "अच्छे विचार रखो अच्छे काम करो अच्छा जीवन बिताओ", Source: "सुभाषित", Length: model.LengthMedium},
	{Text: "हर दिन एक नई शुरुआत है इसे सार्थक बनाओ", Source: "सुभाषित", Length: model.LengthMedium},
	{Text: "सच्चा मित्र वही है जो कठिन समय में साथ दे", Source: "लोकोक्ति", Length: model.LengthMedium},
	{Text: "समय का सदुपयोग करो यही जीवन की सबसे बड़ी सीख है", Source: "सुभाषित", Length: model.LengthMedium},
	{Text: "विद्या से विनय आती है विनय से योग्यता आती है", Source: "सुभाषित", Length: model.LengthMedium},
	{Text: "अपने सपनों को पूरा करने के लिए निरंतर प्रयास करो", Source: "सुभाषित", Length: model.LengthMedium},
	{Text: "जीवन में सफलता पाने के लिए कठिन परिश्रम करना पड़ता है", Source: "लोकोक्ति", Length: model.LengthMedium},
	{Text: "खाली बैठने से कुछ नहीं होता मेहनत करो तो सफलता मिलती है", Source: "लोकोक्ति", Length: model.LengthMedium},
	{Text: "किताबें मनुष्य की सबसे अच्छी मित्र होती हैं", Source: "सुभाषित", Length: model.LengthMedium},
	{Text: "सत्य की राह कठिन होती है पर अंत में विजय सत्य की ही होती है", Source: "लोकोक्ति", Length: model.LengthMedium},
	{Text: "जीवन एक संघर्ष है और इस संघर्ष में जो डटकर खड़ा रहता है वही सफल होता है", Source: "सुभाषित", Length: model.LengthLong},
	{Text: "शिक्षा का उद्देश्य केवल नौकरी पाना नहीं है बल्कि एक अच्छा इंसान बनना भी है", Source: "सुभाषित", Length: model.LengthLong},
	{Text: "भारत एक महान देश है जहाँ अनेक भाषाएँ बोली जाती हैं और विविध परंपराएँ फलती फूलती हैं", Source: "सामान्य ज्ञान", Length: model.LengthLong},
	{Text: "अगर आप सच में कुछ पाना चाहते हैं तो पूरी लगन और मेहनत से उसके पीछे लग जाओ", Source: "सुभाषित", Length: model.LengthLong},
	{Text: "संसार हमारा सबसे बड़ा शिक्षक है इससे हम धैर्य और संतोष सीख सकते हैं", Source: "सुभाषित", Length: model.LengthLong},
	{Text: "अच्छे लोगों की संगति में रहने से मन शुद्ध होता है और बुरे विचार दूर हो जाते हैं", Source: "सुभाषित", Length: model.LengthLong},
	{Text: "विद्यालय में बच्चे पढ़ाई के साथ साथ अनुशासन और सहयोग भी सीखते हैं जो जीवन में काम आता है", Source: "सामान्य ज्ञान", Length: model.LengthLong},
	{Text: "हर व्यक्ति के जीवन में कठिन समय आता है लेकिन जो हार नहीं मानता वही आगे बढ़ता है", Source: "लोकोक्ति", Length: model.LengthLong},
	{Text: "देश की प्रगति उसके नागरिकों के परिश्रम और समर्पण पर निर्भर करती है इसलिए हर किसी को अपना कर्तव्य निभाना चाहिए", Source: "सुभाषित", Length: model.LengthLong},
	{Text: "भाषा सीखना एक ऐसी यात्रा है जिसमें धैर्य और निरंतर अभ्यास की आवश्यकता होती है पर इसका फल अनमोल है", Source: "सुभाषित", Length: model.LengthLong},
}
