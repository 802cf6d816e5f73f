package catalog

import "github.com/shloka-app/shloka-server/internal/domain"

// chapters cover the full text in order, each with a short summary and
// one or two sample verses.
var chapters = []domain.Chapter{
	{
		ID:            "chapter_1",
		ChapterNumber: 1,
		NameEnglish:   "Arjuna's Dilemma",
		NameSanskrit:  "अर्जुनविषादयोग (Arjuna Vishada Yoga)",
		Description:   "The first chapter describes how Arjuna, overwhelmed by grief and moral confusion on the battlefield, refuses to fight.",
		KeyTeaching:   "This chapter sets the stage for Krishna's teachings by showing Arjuna's spiritual crisis - a universal human experience of doubt and despair.",
		Verses: []domain.Verse{
			{
				VerseNumber: "1.30",
				Sanskrit:    "निमित्तानि च पश्यामि विपरीतानि केशव।",
				English:     "I see omens of evil, O Krishna. I do not see any good in killing my kinsmen in battle.",
			},
		},
	},
	{
		ID:            "chapter_2",
		ChapterNumber: 2,
		NameEnglish:   "The Eternal Reality of the Soul",
		NameSanskrit:  "सांख्ययोग (Sankhya Yoga)",
		Description:   "Krishna explains the eternal nature of the soul and introduces the concepts of dharma and karma yoga.",
		KeyTeaching:   "The soul is eternal and indestructible. Focus on your duty without attachment to results.",
		Verses: []domain.Verse{
			{
				VerseNumber: "2.20",
				Sanskrit:    "न जायते म्रियते वा कदाचिन्नायं भूत्वा भविता वा न भूयः।",
				English:     "The soul is never born and never dies. It is unborn, eternal, ever-existing, and primeval.",
			},
			{
				VerseNumber: "2.47",
				Sanskrit:    "कर्मण्येवाधिकारस्ते मा फलेषु कदाचन।",
				English:     "You have the right to perform your duty, but you are not entitled to the fruits of your actions.",
			},
		},
	},
	{
		ID:            "chapter_3",
		ChapterNumber: 3,
		NameEnglish:   "Path of Action",
		NameSanskrit:  "कर्मयोग (Karma Yoga)",
		Description:   "Krishna explains the importance of selfless action and performing one's duty without desire for personal gain.",
		KeyTeaching:   "Perform your duties as an offering to the Divine, without attachment to outcomes.",
		Verses: []domain.Verse{
			{
				VerseNumber: "3.19",
				Sanskrit:    "तस्मादसक्तः सततं कार्यं कर्म समाचर।",
				English:     "Therefore, without attachment, constantly perform actions which are duty, for by performing actions without attachment, one attains the Supreme.",
			},
		},
	},
	{
		ID:            "chapter_4",
		ChapterNumber: 4,
		NameEnglish:   "Path of Knowledge",
		NameSanskrit:  "ज्ञानयोग (Jnana Yoga)",
		Description:   "Krishna reveals the divine nature of his incarnations and the liberating power of spiritual knowledge.",
		KeyTeaching:   "Knowledge of the true self and the divine nature destroys all karma and leads to liberation.",
		Verses: []domain.Verse{
			{
				VerseNumber: "4.7",
				Sanskrit:    "यदा यदा हि धर्मस्य ग्लानिर्भवति भारत।",
				English:     "Whenever there is a decline in righteousness and rise in unrighteousness, O Arjuna, at that time I manifest myself on earth.",
			},
		},
	},
	{
		ID:            "chapter_5",
		ChapterNumber: 5,
		NameEnglish:   "Path of Renunciation",
		NameSanskrit:  "सन्न्यासयोग (Sannyasa Yoga)",
		Description:   "Krishna explains that both renunciation and selfless service lead to liberation, but selfless service is superior.",
		KeyTeaching:   "True renunciation is not abandoning action, but performing action without selfish desire.",
		Verses: []domain.Verse{
			{
				VerseNumber: "5.10",
				Sanskrit:    "ब्रह्मण्याधाय कर्माणि सङ्गं त्यक्त्वा करोति यः।",
				English:     "One who performs their duty without attachment, surrendering results unto the Supreme, is unaffected by sin.",
			},
		},
	},
	{
		ID:            "chapter_6",
		ChapterNumber: 6,
		NameEnglish:   "Path of Meditation",
		NameSanskrit:  "ध्यानयोग (Dhyana Yoga)",
		Description:   "Krishna describes the practice of meditation and the characteristics of a true yogi.",
		KeyTeaching:   "Through meditation and self-control, one can achieve peace and ultimately unite with the Divine.",
		Verses: []domain.Verse{
			{
				VerseNumber: "6.5",
				Sanskrit:    "उद्धरेदात्मनात्मानं नात्मानमवसादयेत्।",
				English:     "Elevate yourself through the power of your mind, and not degrade yourself, for the mind can be the friend and also the enemy of the self.",
			},
		},
	},
	{
		ID:            "chapter_7",
		ChapterNumber: 7,
		NameEnglish:   "Knowledge and Wisdom",
		NameSanskrit:  "ज्ञानविज्ञानयोग (Jnana Vijnana Yoga)",
		Description:   "Krishna explains his divine nature and how he pervades all of creation.",
		KeyTeaching:   "Understanding that God is both the material and spiritual essence of all existence.",
		Verses: []domain.Verse{
			{
				VerseNumber: "7.8",
				Sanskrit:    "रसोऽहमप्सु कौन्तेय प्रभास्मि शशिसूर्ययोः।",
				English:     "I am the taste in water, O son of Kunti, and I am the light of the sun and moon.",
			},
		},
	},
	{
		ID:            "chapter_8",
		ChapterNumber: 8,
		NameEnglish:   "Path to the Supreme",
		NameSanskrit:  "अक्षरब्रह्मयोग (Aksara Brahma Yoga)",
		Description:   "Krishna explains how to attain Him through constant remembrance, especially at the time of death.",
		KeyTeaching:   "Whatever one remembers at the time of death, one attains that state.",
		Verses: []domain.Verse{
			{
				VerseNumber: "8.7",
				Sanskrit:    "तस्मात्सर्वेषु कालेषु मामनुस्मर युध्य च।",
				English:     "Therefore, remember Me at all times and fight. With mind and intellect fixed on Me, you will surely come to Me.",
			},
		},
	},
	{
		ID:            "chapter_9",
		ChapterNumber: 9,
		NameEnglish:   "Royal Knowledge",
		NameSanskrit:  "राजविद्याराजगुह्ययोग (Raja Vidya Raja Guhya Yoga)",
		Description:   "Krishna reveals the most confidential knowledge about devotion and His divine nature.",
		KeyTeaching:   "God accepts even the smallest offering made with love and devotion.",
		Verses: []domain.Verse{
			{
				VerseNumber: "9.26",
				Sanskrit:    "पत्रं पुष्पं फलं तोयं यो मे भक्त्या प्रयच्छति।",
				English:     "Whoever offers Me with devotion a leaf, a flower, a fruit, or water - I accept that offering of love from the pure-hearted.",
			},
		},
	},
	{
		ID:            "chapter_10",
		ChapterNumber: 10,
		NameEnglish:   "Divine Manifestations",
		NameSanskrit:  "विभूतियोग (Vibhuti Yoga)",
		Description:   "Krishna describes His divine manifestations and how He pervades the entire universe.",
		KeyTeaching:   "God is present in all that is excellent, powerful, and beautiful in creation.",
		Verses: []domain.Verse{
			{
				VerseNumber: "10.20",
				Sanskrit:    "अहमात्मा गुडाकेश सर्वभूताशयस्थितः।",
				English:     "I am the Self, O Arjuna, seated in the hearts of all beings. I am the beginning, the middle, and also the end of all beings.",
			},
		},
	},
	{
		ID:            "chapter_11",
		ChapterNumber: 11,
		NameEnglish:   "Vision of the Universal Form",
		NameSanskrit:  "विश्वरूपदर्शनयोग (Vishvarupa Darshana Yoga)",
		Description:   "Krishna reveals His cosmic form to Arjuna, showing the magnificence of the entire universe in His body.",
		KeyTeaching:   "God encompasses all of existence - the creator, preserver, and destroyer of all.",
		Verses: []domain.Verse{
			{
				VerseNumber: "11.54",
				Sanskrit:    "भक्त्या त्वनन्यया शक्य अहमेवंविधोऽर्जुन।",
				English:     "Only by undivided devotion can I be known and seen in this form, O Arjuna, and entered into.",
			},
		},
	},
	{
		ID:            "chapter_12",
		ChapterNumber: 12,
		NameEnglish:   "Path of Devotion",
		NameSanskrit:  "भक्तियोग (Bhakti Yoga)",
		Description:   "Krishna explains that the path of devotion is the most direct way to reach Him.",
		KeyTeaching:   "Devotion to God with love and surrender is the highest path.",
		Verses: []domain.Verse{
			{
				VerseNumber: "12.8",
				Sanskrit:    "मय्येव मन आधत्स्व मयि बुद्धिं निवेशय।",
				English:     "Fix your mind on Me alone and let your intellect dwell upon Me. Thereafter you will live in Me without doubt.",
			},
		},
	},
	{
		ID:            "chapter_13",
		ChapterNumber: 13,
		NameEnglish:   "Field and Knower of the Field",
		NameSanskrit:  "क्षेत्रक्षेत्रज्ञविभागयोग (Kshetra Kshetrajna Vibhaga Yoga)",
		Description:   "Krishna explains the distinction between the physical body (field) and the soul (knower of the field).",
		KeyTeaching:   "Understanding the difference between the body and the eternal soul is true knowledge.",
		Verses: []domain.Verse{
			{
				VerseNumber: "13.2",
				Sanskrit:    "क्षेत्रज्ञं चापि मां विद्धि सर्वक्षेत्रेषु भारत।",
				English:     "Know Me to be the Knower of the field in all fields, O Arjuna. Knowledge of the field and its Knower is true knowledge.",
			},
		},
	},
	{
		ID:            "chapter_14",
		ChapterNumber: 14,
		NameEnglish:   "Three Modes of Nature",
		NameSanskrit:  "गुणत्रयविभागयोग (Gunatraya Vibhaga Yoga)",
		Description:   "Krishna explains the three gunas (modes of nature): sattva (goodness), rajas (passion), and tamas (ignorance).",
		KeyTeaching:   "Understanding the three gunas helps one transcend material nature and attain liberation.",
		Verses: []domain.Verse{
			{
				VerseNumber: "14.5",
				Sanskrit:    "सत्त्वं रजस्तम इति गुणाः प्रकृतिसम्भवाः।",
				English:     "Goodness, passion, and ignorance - these three modes born of nature bind the eternal soul to the body.",
			},
		},
	},
	{
		ID:            "chapter_15",
		ChapterNumber: 15,
		NameEnglish:   "The Supreme Person",
		NameSanskrit:  "पुरुषोत्तमयोग (Purushottama Yoga)",
		Description:   "Krishna describes the imperishable tree of material existence and how to attain the supreme abode.",
		KeyTeaching:   "God is beyond both the perishable and imperishable, the Supreme Person who sustains all.",
		Verses: []domain.Verse{
			{
				VerseNumber: "15.7",
				Sanskrit:    "ममैवांशो जीवलोके जीवभूतः सनातनः।",
				English:     "The living entities in this world are My eternal fragmented parts, but bound by material nature, they struggle with the six senses including the mind.",
			},
		},
	},
	{
		ID:            "chapter_16",
		ChapterNumber: 16,
		NameEnglish:   "Divine and Demonic Natures",
		NameSanskrit:  "दैवासुरसम्पद्विभागयोग (Daivasura Sampad Vibhaga Yoga)",
		Description:   "Krishna contrasts divine and demonic qualities, explaining which lead to liberation and which to bondage.",
		KeyTeaching:   "Cultivate divine qualities like truthfulness, compassion, and humility; avoid demonic qualities like pride, anger, and arrogance.",
		Verses: []domain.Verse{
			{
				VerseNumber: "16.3",
				Sanskrit:    "तेजः क्षमा धृतिः शौचमद्रोहो नातिमानिता।",
				English:     "Vigor, forgiveness, fortitude, purity, absence of hatred, and absence of pride - these are the qualities of those endowed with divine nature.",
			},
		},
	},
	{
		ID:            "chapter_17",
		ChapterNumber: 17,
		NameEnglish:   "Three Divisions of Faith",
		NameSanskrit:  "श्रद्धात्रयविभागयोग (Shraddhatraya Vibhaga Yoga)",
		Description:   "Krishna explains how faith manifests according to one's nature and the three types of faith.",
		KeyTeaching:   "Faith aligned with goodness leads to divinity; faith in passion or ignorance leads to bondage.",
		Verses: []domain.Verse{
			{
				VerseNumber: "17.3",
				Sanskrit:    "सत्त्वानुरूपा सर्वस्य श्रद्धा भवति भारत।",
				English:     "The faith of all beings conforms to their mental disposition, O Arjuna. A person is known by the faith they hold.",
			},
		},
	},
	{
		ID:            "chapter_18",
		ChapterNumber: 18,
		NameEnglish:   "Liberation through Renunciation",
		NameSanskrit:  "मोक्षसंन्यासयोग (Moksha Sannyasa Yoga)",
		Description:   "The final chapter summarizes all the teachings and emphasizes complete surrender to God.",
		KeyTeaching:   "Surrender all actions to God, perform your duty without attachment, and you will attain liberation.",
		Verses: []domain.Verse{
			{
				VerseNumber: "18.66",
				Sanskrit:    "सर्वधर्मान्परित्यज्य मामेकं शरणं व्रज।",
				English:     "Abandon all varieties of dharma and just surrender unto Me. I shall deliver you from all sinful reactions. Do not fear.",
			},
			{
				VerseNumber: "18.78",
				Sanskrit:    "यत्र योगेश्वरः कृष्णो यत्र पार्थो धनुर्धरः।",
				English:     "Wherever there is Krishna, the Lord of Yoga, and Arjuna, the wielder of the bow, there will be fortune, victory, prosperity, and morality.",
			},
		},
	},
}
