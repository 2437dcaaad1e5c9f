package reference

// Erythema action spectrum (CIE), relative effectiveness, 290-400 nm.
var erythemaValues = [...]float64{
	1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
	1.0, 0.805, 0.649, 0.522, 0.421, 0.339, 0.273, 0.22,
	0.177, 0.143, 0.115, 0.0925, 0.0745, 0.06, 0.0483, 0.0389,
	0.0313, 0.0252, 0.0203, 0.0164, 0.0132, 0.0106, 0.00855, 0.00689,
	0.00555, 0.00447, 0.0036, 0.0029, 0.00233, 0.00188, 0.00151, 0.00141,
	0.00136, 0.00132, 0.00127, 0.00123, 0.00119, 0.00115, 0.00111, 0.00107,
	0.00104, 0.001, 0.000966, 0.000933, 0.000902, 0.000871, 0.000841, 0.000813,
	0.000785, 0.000759, 0.000733, 0.000708, 0.000684, 0.000661, 0.000638, 0.000617,
	0.000596, 0.000575, 0.000556, 0.000537, 0.000519, 0.000501, 0.000484, 0.000468,
	0.000452, 0.000437, 0.000422, 0.000407, 0.000394, 0.00038, 0.000367, 0.000355,
	0.000343, 0.000331, 0.00032, 0.000309, 0.000299, 0.000288, 0.000279, 0.000269,
	0.00026, 0.000251, 0.000243, 0.000234, 0.000226, 0.000219, 0.000211, 0.000204,
	0.000197, 0.000191, 0.000184, 0.000178, 0.000172, 0.000166, 0.00016, 0.000155,
	0.00015, 0.000145, 0.00014, 0.000135, 0.00013, 0.000126, 0.000122,
}

// Standard sun spectrum (SSR) spectral irradiance, 290-400 nm.
var solarUVValues = [...]float64{
	8.74e-06, 1.45e-05, 2.66e-05, 4.57e-05, 0.000101, 0.000259, 0.000704, 0.00168,
	0.00373, 0.00794, 0.0148, 0.0251, 0.0418, 0.0622, 0.0869, 0.122,
	0.162, 0.199, 0.248, 0.289, 0.336, 0.387, 0.431, 0.488,
	0.512, 0.557, 0.596, 0.626, 0.657, 0.688, 0.724, 0.737,
	0.768, 0.796, 0.799, 0.829, 0.844, 0.856, 0.879, 0.895,
	0.901, 0.916, 0.943, 0.944, 0.943, 0.957, 0.966, 0.977,
	0.977, 0.997, 0.994, 1.01, 1.01, 1.01, 1.02, 1.03,
	1.03, 1.03, 1.04, 1.03, 1.05, 1.04, 1.04, 1.04,
	1.04, 1.05, 1.04, 1.04, 1.03, 1.04, 1.04, 1.03,
	1.02, 1.02, 0.998, 0.996, 0.967, 0.965, 0.939, 0.919,
	0.898, 0.873, 0.847, 0.812, 0.784, 0.742, 0.715, 0.669,
	0.628, 0.586, 0.534, 0.493, 0.448, 0.393, 0.343, 0.299,
	0.257, 0.215, 0.18, 0.149, 0.119, 0.094, 0.0727, 0.0553,
	0.0401, 0.0289, 0.0207, 0.014, 0.00951, 0.00619, 0.00417,
}

// Persistent pigment darkening action spectrum, relative effectiveness, 320-400 nm.
var ppdValues = [...]float64{
	1.0, 0.975, 0.95, 0.925, 0.9, 0.875, 0.85, 0.825,
	0.8, 0.775, 0.75, 0.725, 0.7, 0.675, 0.65, 0.625,
	0.6, 0.575, 0.55, 0.525, 0.5, 0.494, 0.488, 0.481,
	0.475, 0.469, 0.463, 0.457, 0.45, 0.444, 0.438, 0.432,
	0.426, 0.419, 0.413, 0.407, 0.401, 0.395, 0.388, 0.382,
	0.376, 0.37, 0.364, 0.357, 0.351, 0.345, 0.339, 0.333,
	0.326, 0.32, 0.314, 0.308, 0.302, 0.295, 0.289, 0.283,
	0.277, 0.271, 0.264, 0.258, 0.252, 0.246, 0.24, 0.233,
	0.227, 0.221, 0.215, 0.209, 0.202, 0.196, 0.19, 0.184,
	0.178, 0.171, 0.165, 0.159, 0.153, 0.147, 0.14, 0.134,
	0.128,
}

// UVA source spectral irradiance, 320-400 nm.
var uvaSourceValues = [...]float64{
	4.84e-06, 8.47e-06, 1.36e-05, 2.07e-05, 3.03e-05, 4.29e-05, 5.74e-05, 7.6e-05,
	9.85e-05, 0.000122, 0.000151, 0.000181, 0.000213, 0.000244, 0.000283, 0.000319,
	0.000359, 0.000398, 0.000439, 0.000478, 0.00052, 0.000561, 0.0006, 0.000638,
	0.000674, 0.000712, 0.000747, 0.000778, 0.000818, 0.000843, 0.000875, 0.000904,
	0.000929, 0.000949, 0.000973, 0.000986, 0.00101, 0.00103, 0.00105, 0.00106,
	0.00108, 0.00109, 0.0011, 0.0011, 0.0011, 0.0011, 0.00109, 0.00109,
	0.00108, 0.00107, 0.00105, 0.00103, 0.000995, 0.00097, 0.000937, 0.000906,
	0.000876, 0.000843, 0.000806, 0.000761, 0.000711, 0.000666, 0.000612, 0.000556,
	0.000499, 0.000443, 0.000388, 0.000336, 0.000287, 0.000241, 0.000201, 0.000164,
	0.000131, 0.000103, 7.9e-05, 5.98e-05, 4.46e-05, 3.26e-05, 2.3e-05, 1.58e-05,
	1.05e-05,
}
