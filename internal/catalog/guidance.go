package catalog

import "github.com/shloka-app/shloka-server/internal/domain"

// guidanceEntries map each mood to one verse with translation and
// commentary, in mood table order. Sanskrit is stored NFC with danda
// punctuation and a newline between the two lines of the shloka.
var guidanceEntries = []domain.Guidance{
	{
		ID:                 "guidance_fear_future",
		MoodID:             "fear_future",
		Title:              "Focus on Your Duty, Not Results",
		VerseReference:     "Bhagavad Gita 2.47",
		SanskritVerse:      "कर्मण्येवाधिकारस्ते मा फलेषु कदाचन।\nमा कर्मफलहेतुर्भूर्मा ते सङ्गोऽस्त्वकर्मणि॥",
		EnglishTranslation: "You have the right to perform your prescribed duties, but you are not entitled to the fruits of your actions. Never consider yourself to be the cause of the results, nor be attached to inaction.",
		GuidanceText:       "Krishna teaches that worry about tomorrow comes from attachment to results. Do your duty today with care, but release anxiety about outcomes. The future is shaped by present action, not by worry. Your power lies in what you do now, not in controlling what comes next.",
	},
	{
		ID:                 "guidance_fear_death",
		MoodID:             "fear_death",
		Title:              "The Soul is Eternal",
		VerseReference:     "Bhagavad Gita 2.20",
		SanskritVerse:      "न जायते म्रियते वा कदाचिन्नायं भूत्वा भविता वा न भूयः।\nअजो नित्यः शाश्वतोऽयं पुराणो न हन्यते हन्यमाने शरीरे॥",
		EnglishTranslation: "The soul is never born and never dies. It is unborn, eternal, ever-existing, and primeval. The soul is not slain when the body is slain.",
		GuidanceText:       "Death is only the body changing form, like removing old clothes. Your true self—the soul—is eternal and cannot be destroyed. Understanding this truth brings peace. What you truly are has always existed and will always exist.",
	},
	{
		ID:                 "guidance_fear_failure",
		MoodID:             "fear_failure",
		Title:              "No Effort Is Ever Wasted",
		VerseReference:     "Bhagavad Gita 2.40",
		SanskritVerse:      "नेहाभिक्रमनाशोऽस्ति प्रत्यवायो न विद्यते।\nस्वल्पमप्यस्य धर्मस्य त्रायते महतो भयात्॥",
		EnglishTranslation: "In this endeavor there is no loss or diminution, and even a little advance on this path protects one from the greatest fear.",
		GuidanceText:       "Fear of failure assumes that falling short erases the attempt. Krishna teaches the opposite: on the path of right action, nothing sincere is ever lost. Every honest step counts, however small it looks. Begin, and let the attempt itself be the victory.",
	},
	{
		ID:                 "guidance_anger_injustice",
		MoodID:             "anger_injustice",
		Title:              "Anger Destroys Wisdom",
		VerseReference:     "Bhagavad Gita 2.63",
		SanskritVerse:      "क्रोधाद्भवति संमोहः संमोहात्स्मृतिविभ्रमः।\nस्मृतिभ्रंशाद् बुद्धिनाशो बुद्धिनाशात्प्रणश्यति॥",
		EnglishTranslation: "From anger comes delusion; from delusion, confusion of memory; from confusion of memory, loss of intelligence; and from loss of intelligence, one perishes.",
		GuidanceText:       "When we see injustice, anger is natural. But Krishna warns that unchecked anger clouds our judgment and leads to more suffering. Channel your sense of justice into wise action, not destructive rage. True strength lies in responding with clarity, not reacting in fury.",
	},
	{
		ID:                 "guidance_anger_self",
		MoodID:             "anger_self",
		Title:              "Be Your Own Friend",
		VerseReference:     "Bhagavad Gita 6.5",
		SanskritVerse:      "उद्धरेदात्मनात्मानं नात्मानमवसादयेत्।\nआत्मैव ह्यात्मनो बन्धुरात्मैव रिपुरात्मनः॥",
		EnglishTranslation: "Elevate yourself through the power of your own mind, and do not degrade yourself, for the mind can be the friend and also the enemy of the self.",
		GuidanceText:       "When you turn anger inward, you make an enemy of the one person who is always with you. Krishna asks you to lift yourself up, not tear yourself down. Treat your mistakes as a teacher would, with firmness and kindness together. The same mind that condemns you can become your closest ally.",
	},
	{
		ID:                 "guidance_anger_world",
		MoodID:             "anger_world",
		Title:              "Accept What Cannot Be Changed",
		VerseReference:     "Bhagavad Gita 2.14",
		SanskritVerse:      "मात्रास्पर्शास्तु कौन्तेय शीतोष्णसुखदुःखदाः।\nआगमापायिनोऽनित्यास्तांस्तितिक्षस्व भारत॥",
		EnglishTranslation: "The contacts of the senses with their objects give rise to cold and heat, pleasure and pain, O son of Kunti. They come and go and are impermanent; endure them bravely, O Arjuna.",
		GuidanceText:       "The world will never arrange itself exactly as you wish. Krishna teaches that conditions, like seasons, arrive and pass on their own schedule. Rage at the weather changes nothing; patience outlasts it. Save your strength for the things your own hands can shape.",
	},
	{
		ID:                 "guidance_grief_loss",
		MoodID:             "grief_loss",
		Title:              "All Beings Follow Nature's Way",
		VerseReference:     "Bhagavad Gita 2.27",
		SanskritVerse:      "जातस्य हि ध्रुवो मृत्युर्ध्रुवं जन्म मृतस्य च।\nतस्मादपरिहार्येऽर्थे न त्वं शोचितुमर्हसि॥",
		EnglishTranslation: "For one who has taken birth, death is certain; and for one who has died, birth is certain. Therefore, you should not lament over the inevitable.",
		GuidanceText:       "Your grief honors the love you shared. Krishna does not ask you to stop feeling—he acknowledges that loss is part of life's cycle. Allow yourself to grieve, but know that your loved one's journey continues. What was real in your relationship—the love—remains eternal.",
	},
	{
		ID:                 "guidance_grief_change",
		MoodID:             "grief_change",
		Title:              "Change Is the Way of Life",
		VerseReference:     "Bhagavad Gita 2.13",
		SanskritVerse:      "देहिनोऽस्मिन्यथा देहे कौमारं यौवनं जरा।\nतथा देहान्तरप्राप्तिर्धीरस्तत्र न मुह्यति॥",
		EnglishTranslation: "Just as the embodied soul passes in this body from childhood to youth to old age, so it passes into another body at death. The wise are not deluded by this.",
		GuidanceText:       "What you mourn is a chapter, not the book. Krishna reminds us that every stage of life gives way to the next, as childhood gave way to youth. The past was not taken from you; it completed itself. Honor what was, and let today become something of its own.",
	},
	{
		ID:                 "guidance_grief_health",
		MoodID:             "grief_health",
		Title:              "Care for the Body, Rest in the Self",
		VerseReference:     "Bhagavad Gita 6.17",
		SanskritVerse:      "युक्ताहारविहारस्य युक्तचेष्टस्य कर्मसु।\nयुक्तस्वप्नावबोधस्य योगो भवति दुःखहा॥",
		EnglishTranslation: "For one who is moderate in food and recreation, measured in effort, and regulated in sleep and waking, this practice becomes the destroyer of sorrow.",
		GuidanceText:       "A body that is changing still deserves gentle, steady care. Krishna prescribes moderation, not heroics: measured food, measured rest, measured effort. Tend what can be tended, and remember that what you are is more than what you carry. The self that watches the body is not diminished by it.",
	},
	{
		ID:                 "guidance_confusion_purpose",
		MoodID:             "confusion_purpose",
		Title:              "Surrender to the Divine Will",
		VerseReference:     "Bhagavad Gita 18.66",
		SanskritVerse:      "सर्वधर्मान्परित्यज्य मामेकं शरणं व्रज।\nअहं त्वां सर्वपापेभ्यो मोक्षयिष्यामि मा शुचः॥",
		EnglishTranslation: "Abandon all varieties of dharma and just surrender unto Me. I shall deliver you from all sinful reactions. Do not fear.",
		GuidanceText:       "When you cannot see the path, trust that there is a larger design. Your purpose unfolds not through perfect understanding, but through sincere effort and faith. Do your best each day, and trust that the divine guides those who are open to guidance.",
	},
	{
		ID:                 "guidance_confusion_choice",
		MoodID:             "confusion_choice",
		Title:              "Steady the Restless Mind",
		VerseReference:     "Bhagavad Gita 6.35",
		SanskritVerse:      "असंशयं महाबाहो मनो दुर्निग्रहं चलम्।\nअभ्यासेन तु कौन्तेय वैराग्येण च गृह्यते॥",
		EnglishTranslation: "The mind is restless and difficult to restrain, O mighty-armed one, but it is subdued by practice and by detachment, O son of Kunti.",
		GuidanceText:       "Indecision is the mind sprinting between futures it cannot see. Krishna does not deny the mind is hard to still; he says it yields to practice and detachment. Step back from the outcomes for a moment and the options grow quieter. A settled mind chooses with far less effort than a racing one.",
	},
	{
		ID:                 "guidance_confusion_meaning",
		MoodID:             "confusion_meaning",
		Title:              "Seek What Is Real",
		VerseReference:     "Bhagavad Gita 2.16",
		SanskritVerse:      "नासतो विद्यते भावो नाभावो विद्यते सतः।\nउभयोरपि दृष्टोऽन्तस्त्वनयोस्तत्त्वदर्शिभिः॥",
		EnglishTranslation: "The unreal has no existence, and the real never ceases to be. The seers of truth have concluded the same about both.",
		GuidanceText:       "Meaning feels absent when you measure life by things that pass. Krishna points to a simple test: the unreal never lasts, and the real never stops existing. Look for what remains when circumstances change, in love, in truth, in the self that observes it all. Build on that, and meaning stops being a question.",
	},
	{
		ID:                 "guidance_detachment_loneliness",
		MoodID:             "detachment_loneliness",
		Title:              "You Are Never Alone",
		VerseReference:     "Bhagavad Gita 9.29",
		SanskritVerse:      "समोऽहं सर्वभूतेषु न मे द्वेष्योऽस्ति न प्रियः।\nये भजन्ति तु मां भक्त्या मयि ते तेषु चाप्यहम्॥",
		EnglishTranslation: "I am equal to all beings; none are hateful or dear to Me. But those who worship Me with devotion are in Me, and I am in them.",
		GuidanceText:       "Loneliness comes from feeling separate. Krishna reveals that the divine presence dwells within you and all beings. You are connected to everything through this universal spirit. Even in solitude, you are held by something greater than yourself.",
	},
	{
		ID:                 "guidance_detachment_emptiness",
		MoodID:             "detachment_emptiness",
		Title:              "Fullness Is Everywhere",
		VerseReference:     "Bhagavad Gita 6.30",
		SanskritVerse:      "यो मां पश्यति सर्वत्र सर्वं च मयि पश्यति।\nतस्याहं न प्रणश्यामि स च मे न प्रणश्यति॥",
		EnglishTranslation: "For one who sees Me everywhere and sees all things in Me, I am never lost, nor is that person ever lost to Me.",
		GuidanceText:       "Emptiness is not proof that nothing is there; it is the feeling of looking without seeing. Krishna offers another way of looking, where every ordinary thing carries the divine within it. Start small: one meal, one tree, one face. Seen fully, the world refills.",
	},
	{
		ID:                 "guidance_detachment_world",
		MoodID:             "detachment_world",
		Title:              "Engage for the Sake of Others",
		VerseReference:     "Bhagavad Gita 3.20",
		SanskritVerse:      "कर्मणैव हि संसिद्धिमास्थिता जनकादयः।\nलोकसंग्रहमेवापि संपश्यन्कर्तुमर्हसि॥",
		EnglishTranslation: "By action alone Janaka and others attained perfection. You should act as well, with a view to the welfare of the world.",
		GuidanceText:       "Withdrawal promises peace but delivers isolation. Krishna points to King Janaka, who reached the highest state while ruling a kingdom, not by leaving it. You do not need to want the world's prizes to work for the world's good. Act for others, and belonging returns on its own.",
	},
	{
		ID:                 "guidance_joy_gratitude",
		MoodID:             "joy_gratitude",
		Title:              "Offer Your Joy",
		VerseReference:     "Bhagavad Gita 9.26",
		SanskritVerse:      "पत्रं पुष्पं फलं तोयं यो मे भक्त्या प्रयच्छति।\nतदहं भक्त्युपहृतमश्नामि प्रयतात्मनः॥",
		EnglishTranslation: "Whoever offers Me with devotion a leaf, a flower, a fruit, or water, I accept that offering of love from the pure-hearted.",
		GuidanceText:       "Gratitude grows when it is given somewhere. Krishna accepts the simplest offering, a single leaf or a handful of water, when it is given with love. Let your thankfulness become an offering: share it, speak it, pass it on. Joy that flows outward never runs dry.",
	},
	{
		ID:                 "guidance_joy_peace",
		MoodID:             "joy_peace",
		Title:              "Peace Like the Ocean",
		VerseReference:     "Bhagavad Gita 2.70",
		SanskritVerse:      "आपूर्यमाणमचलप्रतिष्ठं समुद्रमापः प्रविशन्ति यद्वत्।\nतद्वत्कामा यं प्रविशन्ति सर्वे स शान्तिमाप्नोति न कामकामी॥",
		EnglishTranslation: "As the ocean remains full and unmoved though rivers flow into it from every side, so one whom desires enter without disturbance attains peace, and not the one who chases desires.",
		GuidanceText:       "The calm you feel is worth protecting. Krishna compares the peaceful heart to the ocean: rivers pour in, yet the sea does not overflow. Let wishes and worries arrive without letting them set your level. Contentment is not having everything; it is remaining full.",
	},
	{
		ID:                 "guidance_joy_celebration",
		MoodID:             "joy_celebration",
		Title:              "Every Gift Has a Source",
		VerseReference:     "Bhagavad Gita 10.41",
		SanskritVerse:      "यद्यद्विभूतिमत्सत्त्वं श्रीमदूर्जितमेव वा।\nतत्तदेवावगच्छ त्वं मम तेजोऽंशसंभवम्॥",
		EnglishTranslation: "Whatever is glorious, prosperous, or powerful in any being, know that to spring from but a spark of My splendor.",
		GuidanceText:       "Celebrate fully, and remember where brilliance comes from. Krishna says every excellent thing is a spark of a far greater fire. Success enjoyed this way becomes gratitude rather than vanity. Raise your glass and bow your head in the same motion.",
	},
	{
		ID:                 "guidance_doubt_faith",
		MoodID:             "doubt_faith",
		Title:              "Faith Ripens into Knowledge",
		VerseReference:     "Bhagavad Gita 4.39",
		SanskritVerse:      "श्रद्धावाँल्लभते ज्ञानं तत्परः संयतेन्द्रियः।\nज्ञानं लब्ध्वा परां शान्तिमचिरेणाधिगच्छति॥",
		EnglishTranslation: "One who has faith, who is devoted to it, and who has mastered the senses, gains knowledge. Having gained knowledge, one quickly attains supreme peace.",
		GuidanceText:       "Doubt about faith is often faith asking to grow. Krishna describes a progression: sincere trust leads to practice, practice to knowledge, and knowledge to peace. You are not required to believe blindly, only to keep walking. What begins as trust ends as something you have seen for yourself.",
	},
	{
		ID:                 "guidance_doubt_teachings",
		MoodID:             "doubt_teachings",
		Title:              "Ask, and Keep Asking",
		VerseReference:     "Bhagavad Gita 4.34",
		SanskritVerse:      "तद्विद्धि प्रणिपातेन परिप्रश्नेन सेवया।\nउपदेक्ष्यन्ति ते ज्ञानं ज्ञानिनस्तत्त्वदर्शिनः॥",
		EnglishTranslation: "Learn the truth by humble approach, by sincere inquiry, and by service. The wise who have seen the truth will teach you.",
		GuidanceText:       "Questioning a teaching is not betrayal; the Gita itself is one long conversation of question and answer. Krishna tells Arjuna to seek out the wise and press them with sincere inquiry. Test what you are taught against those who actually live it. A teaching worth keeping survives honest questions.",
	},
	{
		ID:                 "guidance_doubt_self",
		MoodID:             "doubt_self",
		Title:              "Trust Your Considered Judgment",
		VerseReference:     "Bhagavad Gita 18.63",
		SanskritVerse:      "इति ते ज्ञानमाख्यातं गुह्याद्गुह्यतरं मया।\nविमृश्यैतदशेषेण यथेच्छसि तथा कुरु॥",
		EnglishTranslation: "Thus I have explained to you this knowledge more secret than all secrets. Reflect on it fully, and then do as you wish.",
		GuidanceText:       "After the whole teaching is spoken, Krishna does not command. He says reflect fully, then do as you wish; even God trusts Arjuna to decide. Gather counsel, weigh it honestly, and then honor your own conclusion. Second-guessing ends where sincere reflection has already been.",
	},
	{
		ID:                 "guidance_pride_achievement",
		MoodID:             "pride_achievement",
		Title:              "You Are Not the Only Doer",
		VerseReference:     "Bhagavad Gita 3.27",
		SanskritVerse:      "प्रकृतेः क्रियमाणानि गुणैः कर्माणि सर्वशः।\nअहङ्कारविमूढात्मा कर्ताहमिति मन्यते॥",
		EnglishTranslation: "All actions are carried out by the modes of material nature, but one deluded by ego thinks, 'I am the doer.'",
		GuidanceText:       "Every achievement rests on ten thousand things you did not do: the teachers, the timing, the body that held up. Krishna calls the thought 'I alone did this' a delusion of ego. Claim your effort honestly, and credit the rest honestly too. Accomplishment wears better as gratitude than as a trophy.",
	},
	{
		ID:                 "guidance_pride_knowledge",
		MoodID:             "pride_knowledge",
		Title:              "Knowledge Begins with Humility",
		VerseReference:     "Bhagavad Gita 13.8",
		SanskritVerse:      "अमानित्वमदम्भित्वमहिंसा क्षान्तिरार्जवम्।\nआचार्योपासनं शौचं स्थैर्यमात्मविनिग्रहः॥",
		EnglishTranslation: "Humility, absence of pretension, nonviolence, forbearance, uprightness, service of the teacher, purity, steadfastness, and self-control: these are declared to be knowledge.",
		GuidanceText:       "When Krishna lists what counts as knowledge, the list starts with humility and never mentions being right. What you know is real, but it is a drop held over an ocean. The surest mark of understanding is how gently it treats those still learning. Carry your learning lightly, the way the wise do.",
	},
	{
		ID:                 "guidance_pride_status",
		MoodID:             "pride_status",
		Title:              "See All with Equal Eyes",
		VerseReference:     "Bhagavad Gita 5.18",
		SanskritVerse:      "विद्याविनयसंपन्ने ब्राह्मणे गवि हस्तिनि।\nशुनि चैव श्वपाके च पण्डिताः समदर्शिनः॥",
		EnglishTranslation: "The wise look with equal vision upon a learned and humble sage, a cow, an elephant, a dog, and an outcaste.",
		GuidanceText:       "Status is a costume, and Krishna describes the wise as those who see straight through it. The same self looks out of every pair of eyes, highborn or low. Measure people by what they do, never by where they stand. The view from above is always a distortion.",
	},
	{
		ID:                 "guidance_desire_wealth",
		MoodID:             "desire_wealth",
		Title:              "What You Need Will Be Carried",
		VerseReference:     "Bhagavad Gita 9.22",
		SanskritVerse:      "अनन्याश्चिन्तयन्तो मां ये जनाः पर्युपासते।\nतेषां नित्याभियुक्तानां योगक्षेमं वहाम्यहम्॥",
		EnglishTranslation: "For those who worship Me with undivided devotion, meditating on Me alone, I carry what they lack and preserve what they have.",
		GuidanceText:       "The hunger for more is usually a fear of not having enough. Krishna promises that those who put first things first will have what they lack carried to them. Work diligently, but let the anxiety go; scarcity of spirit is the only poverty that lasts. Enough is a decision before it is a number.",
	},
	{
		ID:                 "guidance_desire_pleasure",
		MoodID:             "desire_pleasure",
		Title:              "Pleasure That Begins Must End",
		VerseReference:     "Bhagavad Gita 5.22",
		SanskritVerse:      "ये हि संस्पर्शजा भोगा दुःखयोनय एव ते।\nआद्यन्तवन्तः कौन्तेय न तेषु रमते बुधः॥",
		EnglishTranslation: "Pleasures born of contact with the senses are wombs of sorrow, for they have a beginning and an end, O son of Kunti. The wise do not rejoice in them.",
		GuidanceText:       "Every sense pleasure arrives with its own departure built in. Krishna is not condemning enjoyment; he is warning against chasing what cannot stay. Notice how the wanting returns the moment the having ends. The joy that lasts is found in what you are, not in what you taste.",
	},
	{
		ID:                 "guidance_desire_recognition",
		MoodID:             "desire_recognition",
		Title:              "Give Without Keeping Score",
		VerseReference:     "Bhagavad Gita 17.20",
		SanskritVerse:      "दातव्यमिति यद्दानं दीयतेऽनुपकारिणे।\nदेशे काले च पात्रे च तद्दानं सात्त्विकं स्मृतम्॥",
		EnglishTranslation: "Charity given as a duty, without expectation of return, at the right place and time and to a worthy person, is held to be in the mode of goodness.",
		GuidanceText:       "The need to be noticed turns every good deed into a transaction. Krishna praises the gift given quietly, with no receipt expected. Do one kind thing this week that no one will ever trace back to you. The self that needs no audience is the one worth feeding.",
	},
	{
		ID:                 "guidance_envy_success",
		MoodID:             "envy_success",
		Title:              "Walk Your Own Path",
		VerseReference:     "Bhagavad Gita 3.35",
		SanskritVerse:      "श्रेयान्स्वधर्मो विगुणः परधर्मात्स्वनुष्ठितात्।\nस्वधर्मे निधनं श्रेयः परधर्मो भयावहः॥",
		EnglishTranslation: "Better one's own duty, though imperfect, than the duty of another well performed. Better is death in one's own duty; the duty of another invites fear.",
		GuidanceText:       "Envy measures your inside against someone else's outside. Krishna is blunt: another person's path, however shining, is the wrong path for you. Their success is evidence of what is possible, not of what you lack. Pour that energy into your own duty and the comparison loses its grip.",
	},
	{
		ID:                 "guidance_envy_happiness",
		MoodID:             "envy_happiness",
		Title:              "Wish All Beings Well",
		VerseReference:     "Bhagavad Gita 12.13",
		SanskritVerse:      "अद्वेष्टा सर्वभूतानां मैत्रः करुण एव च।\nनिर्ममो निरहङ्कारः समदुःखसुखः क्षमी॥",
		EnglishTranslation: "One who bears no ill will toward any being, who is friendly and compassionate, free from possessiveness and ego, equal in pleasure and pain, and forgiving.",
		GuidanceText:       "Another person's contentment takes nothing from your share. Krishna describes his dearest devotee as one who hates no being and befriends all. Try borrowing their joy instead of resenting it; gladness for others is happiness you get to keep. Bitterness only ever bills the one who holds it.",
	},
	{
		ID:                 "guidance_envy_possessions",
		MoodID:             "envy_possessions",
		Title:              "Close the Three Gates",
		VerseReference:     "Bhagavad Gita 16.21",
		SanskritVerse:      "त्रिविधं नरकस्येदं द्वारं नाशनमात्मनः।\nकामः क्रोधस्तथा लोभस्तस्मादेतत्त्रयं त्यजेत्॥",
		EnglishTranslation: "Three gates lead to self-destruction: lust, anger, and greed. Therefore one should abandon all three.",
		GuidanceText:       "Coveting is greed wearing your neighbor's address. Krishna names greed one of three gates that open downward, and wanting what others own walks straight through it. Count what is already in your hands; most of it was once something you wished for. The exit from envy is inventory.",
	},
	{
		ID:                 "guidance_despair_effort",
		MoodID:             "despair_effort",
		Title:              "Good Effort Is Never Lost",
		VerseReference:     "Bhagavad Gita 6.40",
		SanskritVerse:      "पार्थ नैवेह नामुत्र विनाशस्तस्य विद्यते।\nन हि कल्याणकृत्कश्चिद्दुर्गतिं तात गच्छति॥",
		EnglishTranslation: "O Partha, neither in this world nor in the next is there ruin for such a person. No one who does good, dear friend, ever comes to an evil end.",
		GuidanceText:       "This verse answers a despairing question Arjuna himself asked: what happens to the one who tries and falls short? Nothing good is ever destroyed, Krishna says, in this world or any other. Your effort is banked even when the result is not. Rest if you must, then try again; the account carries forward.",
	},
	{
		ID:                 "guidance_despair_future",
		MoodID:             "despair_future",
		Title:              "You Will Cross Every Obstacle",
		VerseReference:     "Bhagavad Gita 18.58",
		SanskritVerse:      "मच्चित्तः सर्वदुर्गाणि मत्प्रसादात्तरिष्यसि।\nअथ चेत्त्वमहङ्कारान्न श्रोष्यसि विनङ्क्ष्यसि॥",
		EnglishTranslation: "Fixing your mind on Me, you will cross over every obstacle by My grace. But if from egoism you will not listen, you will perish.",
		GuidanceText:       "Hopelessness claims to know the future, and it does not. Krishna promises that every obstacle can be crossed, though not carried alone. Shrink the horizon to the next right step and take it. Tomorrow is not a wall; it is a river with a far bank.",
	},
	{
		ID:                 "guidance_despair_world",
		MoodID:             "despair_world",
		Title:              "The Balance Will Be Restored",
		VerseReference:     "Bhagavad Gita 4.7",
		SanskritVerse:      "यदा यदा हि धर्मस्य ग्लानिर्भवति भारत।\nअभ्युत्थानमधर्मस्य तदात्मानं सृजाम्यहम्॥",
		EnglishTranslation: "Whenever righteousness declines and unrighteousness rises, O Arjuna, then I manifest Myself.",
		GuidanceText:       "The world has looked broken before; this promise was spoken on a battlefield. Krishna teaches that decline is never the end of the story and that renewal arrives age after age. Despair reads the current chapter as if it were the last one. Do your small part for what is right and trust the longer arc.",
	},
}
