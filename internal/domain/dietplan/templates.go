package dietplan

// Static template tables. Content is fixed text, never derived from scores.

type stageTemplate struct {
	Title     string
	KeyPoints string
	Foods     string
	Avoid     string
}

var stageTemplates = map[Stage]stageTemplate{
	StageNormal: {
		Title:     "Normal BP - Maintenance Plan",
		KeyPoints: "• Continue balanced, low-sodium diet\n• Focus on whole foods and vegetables\n• Regular physical activity\n• Limit salt to <5g/day",
		Foods:     "✅ Include: White rice, wheat rotis, jowar, bajra, all seasonal vegetables (leafy greens, beans, carrots), legumes (dal, moong, masoor), dry fruits, fruits (apple, banana, orange), honey, jaggery in moderation",
		Avoid:     "❌ Avoid: Excess salt, pickles, canned foods, fried snacks, processed meats, excess ghee/oil",
	},
	StageElevated: {
		Title:     "Elevated BP - Prevention Plan",
		KeyPoints: "• Reduce sodium intake strictly\n• Increase potassium-rich foods\n• Focus on plant-based meals\n• 30 mins daily exercise",
		Foods:     "✅ Include: Brown rice, bajra, jowar, spinach, fenugreek leaves, bottle gourd, bitter gourd, ash gourd, cucumber, tomato, onion, garlic, ginger, moong dal, split chickpeas, groundnuts, almonds, bananas, dates, low-fat yogurt, herbs (dhania, mint)",
		Avoid:     "❌ Avoid: Papad, namkeen, achar (pickles), salted nuts, processed cheese, high-sodium bread, fried items, excess cooking oil, white rice daily",
	},
	StageOne: {
		Title:     "Stage 1 Hypertension - Therapeutic Plan",
		KeyPoints: "• Strict DASH diet adapted to Indian cuisine\n• High potassium, low sodium\n• Consult doctor regularly\n• Monitor BP weekly",
		Foods:     "✅ Include: Millets (bajra, ragi), oats, brown rice, pulses (moong, masoor, chana, urad), leafy greens (palak, methi), bottle gourd, pumpkin, carrot, beetroot, tomato, cucumber, garlic, ginger, fish (2-3x/week), chicken (skinless), milk (low-fat), curd, honey, herbs, spices (jeera, dhania, turmeric)",
		Avoid:     "❌ Avoid: White rice, maida, salt/namkeen, achar, papad, processed meats, red meat, eggs (more than 2/week), full-fat dairy, fried foods, refined oil, excess ghee, palm oil, coconut oil",
	},
	StageTwo: {
		Title:     "Stage 2 Hypertension - Strict Therapeutic Plan",
		KeyPoints: "• Strictly follow DASH diet\n• Minimize salt to <3g/day\n• High fiber intake\n• Medication + lifestyle changes\n• Regular doctor visits",
		Foods:     "✅ Include: Millets exclusively, oats, pulses as main protein, vegetables (all seasonal), sprouts, soaked seeds, nuts (unsalted), herbs, spices without salt, low-fat curd, turmeric in water, flax seeds, chia seeds, honey, dates",
		Avoid:     "❌ Avoid: All salted/processed foods, red meat, organ meats, full-fat dairy, fried items, refined grains, fast food, restaurant meals, excess oil, pickles, sauces, canned items, excess spicy food, alcohol",
	},
	StageCrisis: {
		Title:     "EMERGENCY - Immediate Medical Attention Required",
		KeyPoints: "🚨 SEEK EMERGENCY HELP (108/112)\n• This is a medical emergency\n• Follow doctor's strict dietary guidance\n• Possible hospitalization needed\n• Complete lifestyle change required",
		Foods:     "✅ Follow doctor's prescribed diet strictly after medical evaluation",
		Avoid:     "❌ Any self-medication or home remedies - SEEK PROFESSIONAL HELP",
	},
}

type preferenceBlock struct {
	Note     string
	Foods    string
	MealPlan string
	Recipes  string
}

var preferenceBlocks = map[Preference]preferenceBlock{
	PreferenceVegan: {
		Note:     "🌱 VEGAN OPTION",
		Foods:    "Protein Sources: Moong dal, masoor dal, chickpeas, lentils, peas, tofu (if available), nuts (almonds, walnuts, groundnuts), seeds (sunflower, pumpkin), legume flour\nMilk Alternative: Coconut milk (unsweetened, low quantity), or skip\nFats: Mustard oil (limited), sesame oil (limited)",
		MealPlan: "📋 SAMPLE 1-DAY MEAL PLAN:\n\n🌅 BREAKFAST (7-8 AM)\n• Bajra/Ragi porridge (1 cup) with jaggery (small piece)\n• OR Oats upma with vegetables (tomato, onion, carrot)\n• Fresh fruit (banana or orange)\n• Herbal tea (tulsi, ginger)\n\n☕ MID-MORNING (10-11 AM) - Optional\n• Handful of unsalted almonds/walnuts\n• OR Fresh fruit (apple, papaya)\n\n🍲 LUNCH (12-1 PM)\n• Millet khichdi (1.5 cups) OR Brown rice (1 cup) + moong dal\n• Mixed vegetable curry (bottle gourd, pumpkin, beans)\n• Cucumber/tomato salad (lemon juice, not salt)\n• 1 small roti (millet/wheat)\n\n🥤 AFTERNOON (3-4 PM)\n• Herbal tea with ginger\n• Handful of roasted chana/sprouts\n\n🍛 DINNER (7-8 PM)\n• Masoor dal soup (1.5 cups) with vegetables\n• Steamed millet OR Ragi roti (1-2)\n• Leafy greens sabzi (spinach/fenugreek with minimal oil)\n• Mixed vegetable salad\n\n🌙 BEFORE BED (Optional)\n• Warm turmeric milk (using plant-based milk alternate)",
		Recipes:  "👨‍🍳 3 EASY RECIPES:\n\n1️⃣ MOONG DAL KHICHDI (15 mins)\nIngredients: Moong dal (1/2 cup), rice (1/2 cup), turmeric (pinch), cumin (1/2 tsp), water (3 cups), vegetables (optional)\nMethod: Pressure cook dal + rice + water (3 whistles). Temper with cumin. Add vegetables if desired.\n\n2️⃣ LEAFY GREENS SOUP (10 mins)\nIngredients: Spinach (2 cups), ginger (1 tbsp), garlic (3 cloves), turmeric (pinch), cumin (1/2 tsp), water (2 cups)\nMethod: Boil spinach, ginger, garlic. Blend smooth. Season with spices. Serve warm.\n\n3️⃣ MIXED VEGETABLE CURRY (20 mins)\nIngredients: Bottle gourd (1 cup), pumpkin (1 cup), beans (1/2 cup), onion (1), mustard oil (1 tsp), turmeric (pinch), chili powder (optional)\nMethod: Sauté onion in oil. Add vegetables. Cook 15 mins. Season with spices.",
	},
	PreferenceVegetarian: {
		Note:     "🥬 VEGETARIAN OPTION",
		Foods:    "Protein Sources: All dals, paneer (low-fat, occasional), chickpeas, peas, sprouted grams, nuts, seeds, low-fat yogurt\nDairy: Low-fat milk (200-250ml/day), low-fat curd, buttermilk (without salt)\nFats: Ghee (1 tsp/day), mustard or sesame oil (limited)",
		MealPlan: "📋 SAMPLE 1-DAY MEAL PLAN:\n\n🌅 BREAKFAST (7-8 AM)\n• Idli/Dhokla (2-3 pieces) with sambar (low-salt)\n• OR Oats with low-fat milk\n• Fresh fruit (banana or orange)\n• Herbal tea\n\n☕ MID-MORNING (10-11 AM) - Optional\n• Low-fat curd (1/2 cup) with honey\n• OR Handful of unsalted nuts\n\n🍲 LUNCH (12-1 PM)\n• Millet khichdi (1.5 cups) OR Brown rice (1 cup) with moong dal\n• Paneer sabzi (100g fresh paneer, light oil)\n• Mixed vegetable curry (beans, carrots, peas)\n• 1 roti (wheat/millet flour)\n• Cucumber/tomato salad with lemon\n\n🥤 AFTERNOON (3-4 PM)\n• Buttermilk/lassi (without added salt, 200ml)\n• Roasted chana snack\n\n🍛 DINNER (7-8 PM)\n• Masoor/Moong dal tadka (1.5 cups)\n• Leafy greens sabzi (spinach with minimal ghee)\n• 1-2 millet roti\n• Vegetable salad\n\n🌙 BEFORE BED (Optional)\n• Warm low-fat milk with turmeric",
		Recipes:  "👨‍🍳 3 EASY RECIPES:\n\n1️⃣ PANEER SABZI (15 mins)\nIngredients: Fresh paneer (100g), onion (1), bell pepper (1/2), tomato (1), ghee (1 tsp), turmeric, cumin\nMethod: Cut paneer into cubes. Sauté onion in ghee. Add peppers, tomato. Add paneer & spices. Cook 8 mins.\n\n2️⃣ CURD RICE (10 mins)\nIngredients: Cooked rice (2 cups), curd (1 cup), turmeric (pinch), mustard (1/4 tsp), curry leaves, ginger\nMethod: Mix rice + curd. Temper mustard & curry leaves in oil. Pour over rice. Mix well.\n\n3️⃣ DAL WITH GREENS (20 mins)\nIngredients: Moong dal (1 cup cooked), spinach (2 cups), ginger (1 tbsp), garlic (3 cloves), cumin (1/2 tsp), minimal oil\nMethod: Cook dal. Boil spinach separately. Add to dal. Temper with ginger, garlic, cumin. Simmer 5 mins.",
	},
	PreferenceNonVegetarian: {
		Note:     "🍗 NON-VEGETARIAN OPTION",
		Foods:    "Protein Sources: White fish (sardine, mackerel, pomfret) 2-3x/week, skinless chicken (2-3x/week), eggs (max 2/week - boiled/poached), dals for daily protein\nDairy: Low-fat milk (200-250ml/day), low-fat curd\nFats: Mustard or sesame oil (limited), fish oil beneficial",
		MealPlan: "📋 SAMPLE 1-DAY MEAL PLAN:\n\n🌅 BREAKFAST (7-8 AM)\n• Poached/boiled egg (1) with whole wheat toast\n• OR Upma with vegetables\n• Orange juice (fresh, no added sugar)\n• Herbal tea\n\n☕ MID-MORNING (10-11 AM) - Optional\n• Handful of unsalted almonds\n• OR Fresh fruit (apple, papaya)\n\n🍲 LUNCH (12-1 PM)\n• Basmati/Brown rice (1 cup) + Moong dal soup\n• Grilled fish (100g, white fish) OR Skinless chicken (100g)\n• Mixed vegetable curry (low oil)\n• 1 roti (wheat)\n• Salad with lemon dressing\n\n🥤 AFTERNOON (3-4 PM)\n• Herbal tea\n• Handful of roasted unsalted chana\n\n🍛 DINNER (7-8 PM)\n• Masoor dal (1.5 cups)\n• Leafy green sabzi with minimal oil\n• 1-2 roti\n• Vegetable salad\n\n🌙 BEFORE BED (Optional)\n• Warm low-fat milk with honey",
		Recipes:  "👨‍🍳 3 EASY RECIPES:\n\n1️⃣ GRILLED FISH WITH HERBS (20 mins)\nIngredients: White fish (200g), lemon (1), ginger (1 tbsp), garlic (2 cloves), turmeric, mustard oil (1 tsp)\nMethod: Marinate fish in lemon, ginger, garlic, turmeric (30 mins). Grill in oven at 180°C for 15 mins. Serve with vegetables.\n\n2️⃣ CHICKEN & LENTIL SOUP (25 mins)\nIngredients: Chicken (100g, diced), masoor dal (3/4 cup), vegetable (carrot, peas), turmeric, cumin\nMethod: Boil dal & chicken together (4 whistles). Add vegetables & spices. Simmer 5 mins. Serve hot.\n\n3️⃣ STEAMED FISH WITH VEGETABLES (20 mins)\nIngredients: Fish (150g), vegetables (beans, carrots, bell pepper), ginger (1 tbsp), lemon, minimal oil\nMethod: Place fish on vegetables. Steam for 15 mins. Add ginger & lemon juice. No added salt - use lemon for tang.",
	},
}

const favoritesNoteFormat = "\n\n🍽️ Using Your Favorites:\nIncorporate: %s\n→ Prepare without added salt\n→ Steam, grill, or bake instead of frying\n→ Use herbs and spices for flavor instead of salt"

const tipsBlock = "💡 IMPORTANT TIPS:\n• USE SPICES NOT SALT: Jeera, dhania, turmeric, ginger, garlic, lemon juice, chili powder for flavor\n• COOKING METHODS: Steam, grill, bake, stir-fry (minimal oil) - avoid deep frying\n• OIL LIMIT: Max 5 tsp per day (mustard or sesame oil is best)\n• HYDRATION: Drink 8-10 glasses of water daily + herbal teas\n• MEAL TIMING: Regular intervals, not too big portions\n• MONITOR: Check BP regularly, keep a food diary, feel free to adjust based on your response\n• CONSISTENCY: Follow this plan for at least 4-6 weeks to see results\n\n⚠️ CONSULT YOUR DOCTOR if:\n• Symptoms worsen\n• BP doesn't improve in 2-3 months\n• Taking medications - ensure diet doesn't interfere\n• Planning to exercise heavily"

var recommendationSnippets = map[Stage]string{
	StageNormal:   "• Continue with balanced diet\n• Include vegetables, whole grains, legumes\n• Limit salt to <5g per day\n• Stay hydrated with water and herbal tea",
	StageElevated: "• Focus on low-sodium Indian foods\n• Include more leafy greens, millets, pulses\n• Prepare food with minimal oil\n• Avoid pickles, processed foods, and excess salt",
	StageOne:      "• Strict DASH-like diet with Indian flavors\n• Increase potassium-rich foods: bananas, spinach, moong\n• Use herbs for seasoning instead of salt\n• Limit red meat, include fish 2x/week",
	StageTwo:      "• Therapeutic DASH diet strictly\n• Plant-based emphasis: dal, beans, vegetables\n• Avoid fried foods and high-sodium snacks\n• Work with nutritionist for meal planning",
	StageCrisis:   "• Consult doctor immediately\n• Follow prescribed diet plan strictly\n• Emergency dietary management required\n• Regular monitoring essential",
}

// LifestyleRecommendations is the fixed guidance block stored with every
// assessment regardless of stage.
const LifestyleRecommendations = "• Daily 30-minute exercise (brisk walk, yoga)\n• Manage stress through meditation\n• Sleep 7-8 hours regularly\n• Limit alcohol consumption\n• Avoid smoking\n• Regular BP monitoring"
